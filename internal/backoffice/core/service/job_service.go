package service

import (
	"context"
	"strings"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/backoffice/core/ports/driven"
	"logistics-backoffice/internal/mylogger"

	"github.com/google/uuid"
)

type JobService struct {
	jobs     driven.IJobRepo
	broker   driven.IJobEventsBroker
	notifier driven.IDriverNotifier
	mylog    mylogger.Logger
	now      func() time.Time
}

func NewJobService(
	jobs driven.IJobRepo,
	broker driven.IJobEventsBroker,
	notifier driven.IDriverNotifier,
	mylog mylogger.Logger,
) *JobService {
	return &JobService{
		jobs:     jobs,
		broker:   broker,
		notifier: notifier,
		mylog:    mylog,
		now:      time.Now,
	}
}

func (js *JobService) List(ctx context.Context) ([]models.Job, error) {
	return js.jobs.List(ctx)
}

func (js *JobService) ListForDriver(ctx context.Context, driverId int64) ([]models.Job, error) {
	return js.jobs.ListByDriver(ctx, driverId)
}

func (js *JobService) Get(ctx context.Context, id int64) (models.Job, error) {
	return js.jobs.GetById(ctx, id)
}

func (js *JobService) Create(ctx context.Context, req dto.JobCreateRequest) (models.Job, error) {
	mylog := js.mylog.Action("CreateJob")

	status := models.JobPending
	if req.Status != nil && *req.Status != "" {
		parsed, err := models.ParseJobStatus(*req.Status)
		if err != nil {
			return models.Job{}, myerrors.ErrInvalidJobStatus
		}
		status = parsed
	}

	job := models.Job{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		ScheduledAt: req.ScheduledAt,
		CompletedAt: req.CompletedAt,
		DriverId:    req.DriverId,
		CustomerId:  req.CustomerId,
	}

	id, err := js.jobs.Create(ctx, job)
	if err != nil {
		mylog.Error("failed to create job", err)
		return models.Job{}, err
	}
	job.Id = id

	if job.DriverId != nil {
		js.emitEvent(ctx, job, "assign")
	}

	mylog.Info("job created", "job_id", id)
	return job, nil
}

func (js *JobService) Update(ctx context.Context, id int64, req dto.JobUpdateRequest) (models.Job, error) {
	mylog := js.mylog.Action("UpdateJob")

	job, err := js.jobs.GetById(ctx, id)
	if err != nil {
		return models.Job{}, err
	}

	previousDriver := job.DriverId

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = req.Description
	}
	if req.Status != nil {
		parsed, err := models.ParseJobStatus(*req.Status)
		if err != nil {
			return models.Job{}, myerrors.ErrInvalidJobStatus
		}
		job.Status = parsed
	}
	if req.DriverId != nil {
		job.DriverId = req.DriverId
	}
	if req.CustomerId != nil {
		job.CustomerId = *req.CustomerId
	}
	if req.ScheduledAt != nil {
		job.ScheduledAt = req.ScheduledAt
	}
	if req.CompletedAt != nil {
		job.CompletedAt = req.CompletedAt
	}

	if err := js.jobs.Update(ctx, job); err != nil {
		mylog.Error("failed to update job", err)
		return models.Job{}, err
	}

	reassigned := job.DriverId != nil &&
		(previousDriver == nil || *previousDriver != *job.DriverId)
	if reassigned {
		js.emitEvent(ctx, job, "assign")
	}

	mylog.Info("job updated", "job_id", id)
	return job, nil
}

func (js *JobService) Delete(ctx context.Context, id int64) error {
	return js.jobs.Delete(ctx, id)
}

// PerformAction applies a driver-triggered lifecycle action. The whole
// read-check-write runs under a row lock so concurrent actions on the same job
// cannot lose updates. Check order is fixed: existence, then ownership, then
// action validity — a non-owner never learns whether their action was valid.
func (js *JobService) PerformAction(ctx context.Context, jobId int64, action string, caller models.Driver) (models.Job, error) {
	mylog := js.mylog.Action("PerformJobAction")

	updated, err := js.jobs.UpdateLocked(ctx, jobId, func(job *models.Job) error {
		if job.DriverId == nil || *job.DriverId != caller.Id {
			return myerrors.ErrNotJobOwner
		}
		return applyJobAction(job, action, js.now())
	})
	if err != nil {
		return models.Job{}, err
	}

	js.emitEvent(ctx, updated, strings.ToLower(action))

	mylog.Info("job action applied", "job_id", jobId, "action", strings.ToLower(action), "status", updated.Status)
	return updated, nil
}

// applyJobAction mutates status and timestamps per the requested action.
// Transitions are deliberately permissive over the current status: any
// supported action is accepted for the owning driver regardless of where the
// job currently is.
func applyJobAction(job *models.Job, action string, now time.Time) error {
	switch strings.ToLower(action) {
	case "start":
		job.Status = models.JobInProgress
		if job.ScheduledAt == nil {
			job.ScheduledAt = &now
		}
	case "complete":
		job.Status = models.JobCompleted
		job.CompletedAt = &now
	case "cancel":
		job.Status = models.JobCancelled
		job.CompletedAt = &now
	case "acknowledge":
		job.Status = models.JobAssigned
	default:
		return myerrors.ErrUnsupportedAction
	}
	return nil
}

// emitEvent publishes to the broker and pushes to the driver's websocket. The
// lifecycle change is already committed at this point, so delivery failures
// are logged and do not fail the request.
func (js *JobService) emitEvent(ctx context.Context, job models.Job, action string) {
	event := dto.JobEvent{
		EventId:       uuid.NewString(),
		JobId:         job.Id,
		DriverId:      job.DriverId,
		Action:        action,
		Status:        string(job.Status),
		OccurredAt:    js.now(),
		CorrelationId: uuid.NewString(),
	}

	if err := js.broker.PublishJobEvent(ctx, event); err != nil {
		js.mylog.Error("failed to publish job event", err, "job_id", job.Id)
	}
	if job.DriverId != nil {
		js.notifier.NotifyDriver(*job.DriverId, event)
	}
}
