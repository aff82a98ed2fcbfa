package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"logistics-backoffice/internal/backoffice/adapters/driven/bm"
	"logistics-backoffice/internal/backoffice/adapters/driven/db"
	"logistics-backoffice/internal/backoffice/adapters/driver/myhttp/handle"
	"logistics-backoffice/internal/backoffice/adapters/driver/myhttp/middleware"
	"logistics-backoffice/internal/backoffice/adapters/driver/myhttp/ws"
	"logistics-backoffice/internal/backoffice/core/ports/driven"
	"logistics-backoffice/internal/backoffice/core/service"
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/mylogger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const WaitTime = 10

type Server struct {
	mux    *chi.Mux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     driven.IJobEventsBroker
	hub    *ws.Hub
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    chi.NewRouter(),
	}

	return s
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	// Initialize database connection
	db, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	mylog.Info("Successful database connection")

	// Initialize RabbitMQ connection
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	if err := s.Configure(); err != nil {
		return fmt.Errorf("failed to configure server: %w", err)
	}

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.BackofficePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.BackofficePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure wires repositories, services and handlers and registers routes.
func (s *Server) Configure() error {
	// Repositories
	adminRepo := db.NewAdminRepo(s.db)
	driverRepo := db.NewDriverRepo(s.db)
	customerRepo := db.NewCustomerRepo(s.db)
	jobRepo := db.NewJobRepo(s.db)
	invoiceRepo := db.NewInvoiceRepo(s.db)
	creditNoteRepo := db.NewCreditNoteRepo(s.db)

	s.hub = ws.NewHub(s.mylog)

	// Services
	tokenService, err := service.NewTokenService(s.cfg.App)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}
	authService := service.NewAuthService(tokenService, adminRepo, driverRepo, s.mylog)
	identityService := service.NewIdentityService(tokenService, adminRepo, driverRepo, s.mylog)
	jobService := service.NewJobService(jobRepo, s.mb, s.hub, s.mylog)
	driverService := service.NewDriverService(driverRepo, s.mylog)
	customerService := service.NewCustomerService(customerRepo, s.mylog)
	invoiceService := service.NewInvoiceService(invoiceRepo, s.mylog)
	creditNoteService := service.NewCreditNoteService(creditNoteRepo, s.mylog)

	// Handlers
	authHandler := handle.NewAuthHandler(authService, s.mylog)
	jobHandler := handle.NewJobHandler(jobService, s.mylog)
	driverHandler := handle.NewDriverHandler(driverService, jobService, s.mylog)
	customerHandler := handle.NewCustomerHandler(customerService, s.mylog)
	invoiceHandler := handle.NewInvoiceHandler(invoiceService, s.mylog)
	creditNoteHandler := handle.NewCreditNoteHandler(creditNoteService, s.mylog)

	am := middleware.NewAuthMiddleware(identityService)

	s.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	s.mux.Get("/health", s.healthHandler())
	s.mux.Post("/token", authHandler.AdminLogin())
	s.mux.Post("/drivers/login", authHandler.DriverLogin())

	// Admin back office
	s.mux.Group(func(r chi.Router) {
		r.Use(am.Admin)

		r.Get("/jobs", jobHandler.List())
		r.Post("/jobs", jobHandler.Create())
		r.Get("/jobs/{job_id}", jobHandler.Get())
		r.Put("/jobs/{job_id}", jobHandler.Update())
		r.Delete("/jobs/{job_id}", jobHandler.Delete())

		r.Get("/drivers", driverHandler.List())
		r.Post("/drivers", driverHandler.Create())
		r.Get("/drivers/{driver_id}", driverHandler.Get())
		r.Put("/drivers/{driver_id}", driverHandler.Update())
		r.Delete("/drivers/{driver_id}", driverHandler.Delete())

		r.Get("/customers", customerHandler.List())
		r.Post("/customers", customerHandler.Create())
		r.Get("/customers/{customer_id}", customerHandler.Get())
		r.Put("/customers/{customer_id}", customerHandler.Update())
		r.Delete("/customers/{customer_id}", customerHandler.Delete())

		r.Get("/invoices", invoiceHandler.List())
		r.Post("/invoices", invoiceHandler.Create())
		r.Get("/invoices/{invoice_id}", invoiceHandler.Get())
		r.Put("/invoices/{invoice_id}", invoiceHandler.Update())
		r.Delete("/invoices/{invoice_id}", invoiceHandler.Delete())

		r.Get("/credit-notes", creditNoteHandler.List())
		r.Post("/credit-notes", creditNoteHandler.Create())
		r.Get("/credit-notes/{credit_note_id}", creditNoteHandler.Get())
		r.Put("/credit-notes/{credit_note_id}", creditNoteHandler.Update())
		r.Delete("/credit-notes/{credit_note_id}", creditNoteHandler.Delete())
	})

	// Driver surface
	s.mux.Group(func(r chi.Router) {
		r.Use(am.Driver)

		r.Get("/drivers/me", driverHandler.Me())
		r.Get("/drivers/me/jobs", driverHandler.MyJobs())
		r.Post("/jobs/{job_id}/{action}", jobHandler.Action())
		r.Get("/ws/drivers", s.wsHandler())
	})

	return nil
}

func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.db.IsAlive(); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

func (s *Server) wsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drv, ok := handle.DriverFrom(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		s.hub.ServeDriver(w, r, drv)
	}
}
