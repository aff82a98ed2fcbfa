package main

import (
	"context"
	"errors"
	"log"
	"time"

	"logistics-backoffice/internal/backoffice/adapters/driven/db"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/backoffice/core/service"
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/mylogger"
)

// Seeds the database with demo accounts and jobs. Safe to run repeatedly;
// existing rows are left alone.
func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	mylog := appLogger.Action("seed")

	ctx := context.Background()

	conn, err := db.New(ctx, cfg.DB, mylog)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	admins := db.NewAdminRepo(conn)
	drivers := db.NewDriverRepo(conn)
	customers := db.NewCustomerRepo(conn)
	jobs := db.NewJobRepo(conn)
	invoices := db.NewInvoiceRepo(conn)
	creditNotes := db.NewCreditNoteRepo(conn)

	if _, err := admins.GetByEmail(ctx, "admin@example.com"); errors.Is(err, myerrors.ErrSubjectNotFound) {
		hash, err := service.HashPassword("admin123")
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if _, err := admins.Create(ctx, models.Admin{
			Email:        "admin@example.com",
			FullName:     "System Admin",
			PasswordHash: hash,
		}); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
		mylog.Info("Seeded admin", "email", "admin@example.com")
	}

	driverSeeds := []struct {
		email, name, phone, password string
	}{
		{"driver1@example.com", "Alex Johnson", "555-0101", "driver123"},
		{"driver2@example.com", "Jamie Smith", "555-0102", "driver456"},
	}

	driverIds := make([]int64, 0, len(driverSeeds))
	for _, ds := range driverSeeds {
		drv, err := drivers.GetByEmail(ctx, ds.email)
		if err == nil {
			driverIds = append(driverIds, drv.Id)
			continue
		}
		if !errors.Is(err, myerrors.ErrSubjectNotFound) {
			log.Fatalf("Failed to look up driver: %v", err)
		}

		hash, err := service.HashPassword(ds.password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		phone := ds.phone
		id, err := drivers.Create(ctx, models.Driver{
			Email:        ds.email,
			FullName:     ds.name,
			Phone:        &phone,
			PasswordHash: hash,
			IsActive:     true,
		})
		if err != nil {
			log.Fatalf("Failed to seed driver: %v", err)
		}
		driverIds = append(driverIds, id)
		mylog.Info("Seeded driver", "email", ds.email)
	}

	customerSeeds := []struct {
		name, email, address, phone string
	}{
		{"ACME Corp", "acme@example.com", "123 Industrial Way", "555-0201"},
		{"Globex LLC", "globex@example.com", "456 Enterprise Rd", "555-0202"},
	}

	customerIds := make([]int64, 0, len(customerSeeds))
	for _, cs := range customerSeeds {
		customer, err := customers.GetByEmail(ctx, cs.email)
		if err == nil {
			customerIds = append(customerIds, customer.Id)
			continue
		}
		if !errors.Is(err, myerrors.ErrCustomerNotFound) {
			log.Fatalf("Failed to look up customer: %v", err)
		}

		address, phone := cs.address, cs.phone
		id, err := customers.Create(ctx, models.Customer{
			Name:    cs.name,
			Email:   cs.email,
			Address: &address,
			Phone:   &phone,
		})
		if err != nil {
			log.Fatalf("Failed to seed customer: %v", err)
		}
		customerIds = append(customerIds, id)
		mylog.Info("Seeded customer", "email", cs.email)
	}

	existing, err := jobs.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list jobs: %v", err)
	}
	if len(existing) > 0 {
		mylog.Info("Jobs already present, skipping job seed")
		return
	}

	now := time.Now().UTC()
	tomorrow := now.Add(24 * time.Hour)
	inThreeDays := now.Add(72 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	jobSeeds := []models.Job{
		{
			Title:       "Warehouse Pickup",
			Description: strptr("Collect pallets from the north warehouse"),
			Status:      models.JobAssigned,
			ScheduledAt: &tomorrow,
			DriverId:    &driverIds[0],
			CustomerId:  customerIds[0],
		},
		{
			Title:       "City Delivery",
			Description: strptr("Deliver packages across downtown"),
			Status:      models.JobInProgress,
			ScheduledAt: &now,
			DriverId:    &driverIds[0],
			CustomerId:  customerIds[0],
		},
		{
			Title:       "Long Haul",
			Description: strptr("Interstate freight run"),
			Status:      models.JobPending,
			ScheduledAt: &inThreeDays,
			CustomerId:  customerIds[1],
		},
		{
			Title:       "Return Shipment",
			Description: strptr("Bring back rejected goods"),
			Status:      models.JobCompleted,
			ScheduledAt: &twoDaysAgo,
			CompletedAt: &yesterday,
			DriverId:    &driverIds[1],
			CustomerId:  customerIds[1],
		},
	}

	jobIds := make([]int64, 0, len(jobSeeds))
	for _, job := range jobSeeds {
		id, err := jobs.Create(ctx, job)
		if err != nil {
			log.Fatalf("Failed to seed job: %v", err)
		}
		jobIds = append(jobIds, id)
		mylog.Info("Seeded job", "title", job.Title)
	}

	if _, err := invoices.Create(ctx, models.Invoice{
		JobId:      jobIds[0],
		CustomerId: customerIds[0],
		Amount:     350.0,
		Status:     "issued",
		IssuedAt:   now,
	}); err != nil {
		log.Fatalf("Failed to seed invoice: %v", err)
	}

	if _, err := creditNotes.Create(ctx, models.CreditNote{
		JobId:      jobIds[1],
		CustomerId: customerIds[0],
		Amount:     50.0,
		Reason:     strptr("Damaged items"),
		CreatedAt:  now,
	}); err != nil {
		log.Fatalf("Failed to seed credit note: %v", err)
	}

	mylog.Info("Seed complete")
}

func strptr(s string) *string {
	return &s
}
