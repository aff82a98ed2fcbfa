package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/mylogger"
)

type fakeAdminRepo struct {
	admins map[string]models.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin models.Admin) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return models.Admin{}, myerrors.ErrSubjectNotFound
	}
	return admin, nil
}

type fakeDriverRepo struct {
	drivers map[string]models.Driver
}

func (f *fakeDriverRepo) Create(ctx context.Context, driver models.Driver) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeDriverRepo) GetByEmail(ctx context.Context, email string) (models.Driver, error) {
	driver, ok := f.drivers[email]
	if !ok {
		return models.Driver{}, myerrors.ErrSubjectNotFound
	}
	return driver, nil
}

func (f *fakeDriverRepo) GetById(ctx context.Context, id int64) (models.Driver, error) {
	for _, driver := range f.drivers {
		if driver.Id == id {
			return driver, nil
		}
	}
	return models.Driver{}, myerrors.ErrDriverNotFound
}

func (f *fakeDriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDriverRepo) Update(ctx context.Context, driver models.Driver) error {
	return errors.New("not implemented")
}

func (f *fakeDriverRepo) Delete(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}

func testLogger() mylogger.Logger {
	return mylogger.NewWithWriter(io.Discard, slog.LevelError, "test")
}

func newTestIdentityService(t *testing.T) (*IdentityService, *TokenService, *fakeAdminRepo, *fakeDriverRepo) {
	t.Helper()

	tokens := newTestTokenService(t)
	admins := &fakeAdminRepo{admins: map[string]models.Admin{
		"admin@example.com": {Id: 1, Email: "admin@example.com", FullName: "System Admin"},
	}}
	drivers := &fakeDriverRepo{drivers: map[string]models.Driver{
		"driver@example.com":   {Id: 2, Email: "driver@example.com", FullName: "Alex Johnson", IsActive: true},
		"inactive@example.com": {Id: 3, Email: "inactive@example.com", FullName: "Jamie Smith", IsActive: false},
	}}

	return NewIdentityService(tokens, admins, drivers, testLogger()), tokens, admins, drivers
}

func TestResolveAdmin(t *testing.T) {
	ctx := context.Background()
	is, tokens, admins, _ := newTestIdentityService(t)

	adminToken, _, err := tokens.Issue("admin@example.com", models.RoleAdmin, 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	t.Run("happy path", func(t *testing.T) {
		admin, err := is.ResolveAdmin(ctx, adminToken)
		if err != nil {
			t.Fatalf("ResolveAdmin: %v", err)
		}
		if admin.Id != 1 || admin.Email != "admin@example.com" {
			t.Errorf("resolved wrong admin: %+v", admin)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := is.ResolveAdmin(ctx, "garbage"); !errors.Is(err, myerrors.ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("driver token rejected", func(t *testing.T) {
		driverToken, _, err := tokens.Issue("driver@example.com", models.RoleDriver, 2)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := is.ResolveAdmin(ctx, driverToken); !errors.Is(err, myerrors.ErrRoleMismatch) {
			t.Errorf("err = %v, want ErrRoleMismatch", err)
		}
	})

	t.Run("subject deleted after issue", func(t *testing.T) {
		delete(admins.admins, "admin@example.com")
		defer func() {
			admins.admins["admin@example.com"] = models.Admin{Id: 1, Email: "admin@example.com"}
		}()
		if _, err := is.ResolveAdmin(ctx, adminToken); !errors.Is(err, myerrors.ErrSubjectNotFound) {
			t.Errorf("err = %v, want ErrSubjectNotFound", err)
		}
	})
}

func TestResolveDriver(t *testing.T) {
	ctx := context.Background()
	is, tokens, _, drivers := newTestIdentityService(t)

	driverToken, _, err := tokens.Issue("driver@example.com", models.RoleDriver, 2)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	t.Run("happy path", func(t *testing.T) {
		driver, err := is.ResolveDriver(ctx, driverToken)
		if err != nil {
			t.Fatalf("ResolveDriver: %v", err)
		}
		if driver.Id != 2 {
			t.Errorf("resolved wrong driver: %+v", driver)
		}
	})

	t.Run("admin token rejected", func(t *testing.T) {
		adminToken, _, err := tokens.Issue("admin@example.com", models.RoleAdmin, 1)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := is.ResolveDriver(ctx, adminToken); !errors.Is(err, myerrors.ErrRoleMismatch) {
			t.Errorf("err = %v, want ErrRoleMismatch", err)
		}
	})

	t.Run("inactive driver", func(t *testing.T) {
		inactiveToken, _, err := tokens.Issue("inactive@example.com", models.RoleDriver, 3)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := is.ResolveDriver(ctx, inactiveToken); !errors.Is(err, myerrors.ErrAccountInactive) {
			t.Errorf("err = %v, want ErrAccountInactive", err)
		}
	})

	t.Run("deactivated after issue", func(t *testing.T) {
		driver := drivers.drivers["driver@example.com"]
		driver.IsActive = false
		drivers.drivers["driver@example.com"] = driver
		defer func() {
			driver.IsActive = true
			drivers.drivers["driver@example.com"] = driver
		}()
		if _, err := is.ResolveDriver(ctx, driverToken); !errors.Is(err, myerrors.ErrAccountInactive) {
			t.Errorf("err = %v, want ErrAccountInactive", err)
		}
	})

	t.Run("subject deleted after issue", func(t *testing.T) {
		deleted, _, err := tokens.Issue("gone@example.com", models.RoleDriver, 99)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if _, err := is.ResolveDriver(ctx, deleted); !errors.Is(err, myerrors.ErrSubjectNotFound) {
			t.Errorf("err = %v, want ErrSubjectNotFound", err)
		}
	})
}
