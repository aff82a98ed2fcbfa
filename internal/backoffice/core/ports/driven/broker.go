package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
)

type IJobEventsBroker interface {
	PublishJobEvent(ctx context.Context, event dto.JobEvent) error
	Close() error
}
