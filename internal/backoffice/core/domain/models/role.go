package models

import "fmt"

// Role is the principal kind asserted at token issuance. It is a closed set:
// anything other than admin or driver is rejected at the boundary.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDriver:
		return RoleDriver, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
