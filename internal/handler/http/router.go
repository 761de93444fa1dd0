package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhive/staffhive-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/staffhive-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Client    ClientHandler
	Master    MasterHandler
	Period    PeriodHandler
	Timesheet TimesheetHandler
	TimeOff   TimeOffHandler
	Payroll   PayrollHandler
	Invoice   InvoiceHandler
	Dashboard DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhive"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.GetMe)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeactivateEmployee)
					r.Get("/documents", h.Employee.ListDocuments)
					r.Post("/documents", h.Employee.AddDocument)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.ListClients)
				r.Post("/", h.Client.CreateClient)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Client.GetClient)
					r.Put("/", h.Client.UpdateClient)
					r.Get("/pricing", h.Client.ListPricing)
					r.Post("/pricing", h.Client.CreatePricing)
					r.Delete("/pricing/{pricingID}", h.Client.DeletePricing)
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", h.Master.ListRoles)
				r.Post("/", h.Master.CreateRole)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Master.GetRole)
					r.Put("/", h.Master.UpdateRole)
					r.Delete("/", h.Master.DeleteRole)
				})
			})

			r.Route("/pay-periods", func(r chi.Router) {
				r.Get("/", h.Period.ListPeriods)
				r.Post("/", h.Period.CreatePeriod)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Period.GetPeriod)
					r.Post("/transition", h.Period.TransitionPeriod)
				})
			})

			r.Route("/work-entries", func(r chi.Router) {
				r.Post("/", h.Timesheet.SetWorkEntry)
				r.Get("/period/{periodID}", h.Timesheet.ListByPeriod)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Timesheet.GetWorkEntry)
					r.Delete("/", h.Timesheet.DeleteWorkEntry)
				})
			})

			r.Route("/time-off", func(r chi.Router) {
				r.Get("/", h.TimeOff.ListTimeOff)
				r.Post("/", h.TimeOff.RequestTimeOff)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.TimeOff.GetTimeOff)
					r.Post("/decide", h.TimeOff.DecideTimeOff)
				})
			})

			r.Route("/payroll-runs", func(r chi.Router) {
				r.Get("/", h.Payroll.ListRuns)
				r.Get("/{id}", h.Payroll.GetRun)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Payroll.GenerateRun)
					r.Post("/{id}/transition", h.Payroll.TransitionRun)
					r.Get("/{id}/export", h.Payroll.ExportRun)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.Invoice.ListInvoices)
				r.Get("/{id}", h.Invoice.GetInvoice)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Invoice.GenerateInvoice)
					r.Post("/{id}/transition", h.Invoice.TransitionInvoice)
					r.Get("/{id}/export", h.Invoice.ExportInvoice)
				})
			})

			r.Get("/dashboard/summary", h.Dashboard.GetSummary)
		})
	})

	return r
}
