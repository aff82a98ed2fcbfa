package driven

import "logistics-backoffice/internal/backoffice/core/domain/dto"

// IDriverNotifier pushes job events to a driver's live connections.
// Delivery is best effort; a driver with no open connection misses the event.
type IDriverNotifier interface {
	NotifyDriver(driverId int64, event dto.JobEvent)
}
