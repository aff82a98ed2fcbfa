package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
)

type fakeJobRepo struct {
	jobs   map[int64]models.Job
	nextId int64
}

func newFakeJobRepo(jobs ...models.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: make(map[int64]models.Job)}
	for _, job := range jobs {
		repo.jobs[job.Id] = job
		if job.Id > repo.nextId {
			repo.nextId = job.Id
		}
	}
	return repo
}

func (f *fakeJobRepo) Create(ctx context.Context, job models.Job) (int64, error) {
	f.nextId++
	job.Id = f.nextId
	f.jobs[job.Id] = job
	return job.Id, nil
}

func (f *fakeJobRepo) GetById(ctx context.Context, id int64) (models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return models.Job{}, myerrors.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) List(ctx context.Context) ([]models.Job, error) {
	jobs := make([]models.Job, 0, len(f.jobs))
	for _, job := range f.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (f *fakeJobRepo) ListByDriver(ctx context.Context, driverId int64) ([]models.Job, error) {
	var jobs []models.Job
	for _, job := range f.jobs {
		if job.DriverId != nil && *job.DriverId == driverId {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (f *fakeJobRepo) Update(ctx context.Context, job models.Job) error {
	if _, ok := f.jobs[job.Id]; !ok {
		return myerrors.ErrJobNotFound
	}
	f.jobs[job.Id] = job
	return nil
}

func (f *fakeJobRepo) UpdateLocked(ctx context.Context, id int64, apply func(job *models.Job) error) (models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return models.Job{}, myerrors.ErrJobNotFound
	}
	if err := apply(&job); err != nil {
		return models.Job{}, err
	}
	f.jobs[id] = job
	return job, nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return myerrors.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

type fakeBroker struct {
	events []dto.JobEvent
	err    error
}

func (f *fakeBroker) PublishJobEvent(ctx context.Context, event dto.JobEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeBroker) Close() error { return nil }

type fakeNotifier struct {
	notified map[int64][]dto.JobEvent
}

func (f *fakeNotifier) NotifyDriver(driverId int64, event dto.JobEvent) {
	if f.notified == nil {
		f.notified = make(map[int64][]dto.JobEvent)
	}
	f.notified[driverId] = append(f.notified[driverId], event)
}

func int64ptr(v int64) *int64 { return &v }

func newTestJobService(repo *fakeJobRepo) (*JobService, *fakeBroker, *fakeNotifier, time.Time) {
	broker := &fakeBroker{}
	notifier := &fakeNotifier{}
	js := NewJobService(repo, broker, notifier, testLogger())
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	js.now = func() time.Time { return now }
	return js, broker, notifier, now
}

func TestPerformActionTransitions(t *testing.T) {
	ctx := context.Background()
	owner := models.Driver{Id: 10}
	scheduled := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	stale := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		action     string
		job        models.Job
		wantStatus models.JobStatus
	}{
		{
			name:       "start from assigned",
			action:     "start",
			job:        models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobInProgress,
		},
		{
			name:       "complete from in_progress",
			action:     "complete",
			job:        models.Job{Id: 1, Status: models.JobInProgress, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobCompleted,
		},
		{
			name:       "complete straight from pending",
			action:     "complete",
			job:        models.Job{Id: 1, Status: models.JobPending, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobCompleted,
		},
		{
			name:       "cancel from assigned",
			action:     "cancel",
			job:        models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobCancelled,
		},
		{
			name:       "acknowledge from pending",
			action:     "acknowledge",
			job:        models.Job{Id: 1, Status: models.JobPending, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobAssigned,
		},
		{
			name:       "acknowledge after completion",
			action:     "acknowledge",
			job:        models.Job{Id: 1, Status: models.JobCompleted, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobAssigned,
		},
		{
			name:       "uppercase action",
			action:     "START",
			job:        models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1},
			wantStatus: models.JobInProgress,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeJobRepo(tc.job)
			js, _, _, now := newTestJobService(repo)

			job, err := js.PerformAction(ctx, tc.job.Id, tc.action, owner)
			if err != nil {
				t.Fatalf("PerformAction: %v", err)
			}
			if job.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", job.Status, tc.wantStatus)
			}

			switch tc.wantStatus {
			case models.JobInProgress:
				if job.ScheduledAt == nil {
					t.Error("scheduled_at not set on start")
				}
			case models.JobCompleted, models.JobCancelled:
				if job.CompletedAt == nil || !job.CompletedAt.Equal(now) {
					t.Errorf("completed_at = %v, want %v", job.CompletedAt, now)
				}
			}
		})
	}

	t.Run("start keeps existing schedule", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{
			Id: 1, Status: models.JobAssigned, ScheduledAt: &scheduled,
			DriverId: int64ptr(10), CustomerId: 1,
		})
		js, _, _, _ := newTestJobService(repo)

		job, err := js.PerformAction(ctx, 1, "start", owner)
		if err != nil {
			t.Fatalf("PerformAction: %v", err)
		}
		if job.ScheduledAt == nil || !job.ScheduledAt.Equal(scheduled) {
			t.Errorf("scheduled_at = %v, want %v untouched", job.ScheduledAt, scheduled)
		}
	})

	t.Run("complete overwrites stale completed_at", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{
			Id: 1, Status: models.JobCancelled, CompletedAt: &stale,
			DriverId: int64ptr(10), CustomerId: 1,
		})
		js, _, _, now := newTestJobService(repo)

		job, err := js.PerformAction(ctx, 1, "complete", owner)
		if err != nil {
			t.Fatalf("PerformAction: %v", err)
		}
		if job.CompletedAt == nil || !job.CompletedAt.Equal(now) {
			t.Errorf("completed_at = %v, want %v", job.CompletedAt, now)
		}
	})
}

func TestPerformActionCheckOrder(t *testing.T) {
	ctx := context.Background()
	owner := models.Driver{Id: 10}
	stranger := models.Driver{Id: 99}

	t.Run("unknown job wins over everything", func(t *testing.T) {
		repo := newFakeJobRepo()
		js, _, _, _ := newTestJobService(repo)

		_, err := js.PerformAction(ctx, 404, "bogus", stranger)
		if !errors.Is(err, myerrors.ErrJobNotFound) {
			t.Errorf("err = %v, want ErrJobNotFound", err)
		}
	})

	t.Run("ownership wins over action validity", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, _, _, _ := newTestJobService(repo)

		_, err := js.PerformAction(ctx, 1, "bogus", stranger)
		if !errors.Is(err, myerrors.ErrNotJobOwner) {
			t.Errorf("err = %v, want ErrNotJobOwner", err)
		}
	})

	t.Run("unassigned job owns nobody", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Status: models.JobPending, CustomerId: 1})
		js, _, _, _ := newTestJobService(repo)

		_, err := js.PerformAction(ctx, 1, "acknowledge", owner)
		if !errors.Is(err, myerrors.ErrNotJobOwner) {
			t.Errorf("err = %v, want ErrNotJobOwner", err)
		}
	})

	t.Run("owner with unsupported action", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, _, _, _ := newTestJobService(repo)

		_, err := js.PerformAction(ctx, 1, "bogus", owner)
		if !errors.Is(err, myerrors.ErrUnsupportedAction) {
			t.Errorf("err = %v, want ErrUnsupportedAction", err)
		}
	})

	t.Run("failed action leaves job untouched", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, broker, _, _ := newTestJobService(repo)

		if _, err := js.PerformAction(ctx, 1, "bogus", owner); err == nil {
			t.Fatal("expected error")
		}
		if repo.jobs[1].Status != models.JobAssigned {
			t.Errorf("status changed to %q after failed action", repo.jobs[1].Status)
		}
		if len(broker.events) != 0 {
			t.Errorf("published %d events after failed action", len(broker.events))
		}
	})
}

func TestPerformActionEvents(t *testing.T) {
	ctx := context.Background()
	owner := models.Driver{Id: 10}

	t.Run("publishes and notifies", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, broker, notifier, now := newTestJobService(repo)

		if _, err := js.PerformAction(ctx, 1, "START", owner); err != nil {
			t.Fatalf("PerformAction: %v", err)
		}

		if len(broker.events) != 1 {
			t.Fatalf("published %d events, want 1", len(broker.events))
		}
		event := broker.events[0]
		if event.Action != "start" {
			t.Errorf("action = %q, want start", event.Action)
		}
		if event.Status != string(models.JobInProgress) {
			t.Errorf("status = %q, want in_progress", event.Status)
		}
		if event.JobId != 1 || event.DriverId == nil || *event.DriverId != 10 {
			t.Errorf("unexpected event: %+v", event)
		}
		if !event.OccurredAt.Equal(now) {
			t.Errorf("occurred_at = %v, want %v", event.OccurredAt, now)
		}
		if event.EventId == "" || event.CorrelationId == "" {
			t.Error("event ids not set")
		}

		if len(notifier.notified[10]) != 1 {
			t.Errorf("driver notified %d times, want 1", len(notifier.notified[10]))
		}
	})

	t.Run("broker failure does not fail the action", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, broker, notifier, _ := newTestJobService(repo)
		broker.err = errors.New("amqp down")

		job, err := js.PerformAction(ctx, 1, "complete", owner)
		if err != nil {
			t.Fatalf("PerformAction: %v", err)
		}
		if job.Status != models.JobCompleted {
			t.Errorf("status = %q, want completed", job.Status)
		}
		if len(notifier.notified[10]) != 1 {
			t.Error("driver not notified despite broker failure")
		}
	})
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to pending", func(t *testing.T) {
		repo := newFakeJobRepo()
		js, broker, _, _ := newTestJobService(repo)

		job, err := js.Create(ctx, dto.JobCreateRequest{Title: "Long Haul", CustomerId: 2})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if job.Status != models.JobPending {
			t.Errorf("status = %q, want pending", job.Status)
		}
		if job.Id == 0 {
			t.Error("id not assigned")
		}
		if len(broker.events) != 0 {
			t.Errorf("published %d events for unassigned job", len(broker.events))
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := newFakeJobRepo()
		js, _, _, _ := newTestJobService(repo)

		status := "teleporting"
		_, err := js.Create(ctx, dto.JobCreateRequest{Title: "Long Haul", CustomerId: 2, Status: &status})
		if !errors.Is(err, myerrors.ErrInvalidJobStatus) {
			t.Errorf("err = %v, want ErrInvalidJobStatus", err)
		}
	})

	t.Run("assigned at creation emits assign event", func(t *testing.T) {
		repo := newFakeJobRepo()
		js, broker, notifier, _ := newTestJobService(repo)

		status := "assigned"
		_, err := js.Create(ctx, dto.JobCreateRequest{
			Title: "Warehouse Pickup", CustomerId: 1, DriverId: int64ptr(10), Status: &status,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(broker.events) != 1 || broker.events[0].Action != "assign" {
			t.Errorf("events = %+v, want one assign event", broker.events)
		}
		if len(notifier.notified[10]) != 1 {
			t.Error("assigned driver not notified")
		}
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("reassignment emits assign event", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Title: "City Delivery", Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, broker, _, _ := newTestJobService(repo)

		job, err := js.Update(ctx, 1, dto.JobUpdateRequest{DriverId: int64ptr(20)})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if job.DriverId == nil || *job.DriverId != 20 {
			t.Errorf("driver = %v, want 20", job.DriverId)
		}
		if len(broker.events) != 1 || broker.events[0].Action != "assign" {
			t.Errorf("events = %+v, want one assign event", broker.events)
		}
	})

	t.Run("unrelated update stays quiet", func(t *testing.T) {
		repo := newFakeJobRepo(models.Job{Id: 1, Title: "City Delivery", Status: models.JobAssigned, DriverId: int64ptr(10), CustomerId: 1})
		js, broker, _, _ := newTestJobService(repo)

		title := "City Delivery North"
		job, err := js.Update(ctx, 1, dto.JobUpdateRequest{Title: &title})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if job.Title != title {
			t.Errorf("title = %q, want %q", job.Title, title)
		}
		if len(broker.events) != 0 {
			t.Errorf("published %d events for same-driver update", len(broker.events))
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		repo := newFakeJobRepo()
		js, _, _, _ := newTestJobService(repo)

		if _, err := js.Update(ctx, 404, dto.JobUpdateRequest{}); !errors.Is(err, myerrors.ErrJobNotFound) {
			t.Errorf("err = %v, want ErrJobNotFound", err)
		}
	})
}
