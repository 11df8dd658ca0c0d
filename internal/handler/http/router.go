package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrms-backend-go/internal/config"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Master       MasterHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Performance  PerformanceHandler
	Attendance   AttendanceHandler
	Document     DocumentHandler
	Dashboard    DashboardHandler
	ImportExport ImportExportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.Post("/", h.Master.CreateDepartment)
				r.Get("/", h.Master.ListDepartments)
				r.Get("/export", h.ImportExport.ExportDepartments)
				r.Post("/import", h.ImportExport.ImportDepartments)
				r.Get("/{id}", h.Master.GetDepartment)
				r.Put("/{id}", h.Master.UpdateDepartment)
				r.Delete("/{id}", h.Master.DeleteDepartment)
			})

			r.Route("/positions", func(r chi.Router) {
				r.Post("/", h.Master.CreatePosition)
				r.Get("/", h.Master.ListPositions)
				r.Get("/{id}", h.Master.GetPosition)
				r.Put("/{id}", h.Master.UpdatePosition)
				r.Delete("/{id}", h.Master.DeletePosition)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/export", h.ImportExport.ExportEmployees)
				r.Post("/import", h.ImportExport.ImportEmployees)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
				r.Post("/{id}/terminate", h.Employee.Terminate)
				r.Post("/{id}/photo", h.Employee.UploadPhoto)
				r.Get("/{id}/direct-reports", h.Employee.ListDirectReports)
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Post("/", h.Leave.CreateLeaveType)
				r.Get("/", h.Leave.ListLeaveTypes)
				r.Get("/{id}", h.Leave.GetLeaveType)
				r.Put("/{id}", h.Leave.UpdateLeaveType)
				r.Delete("/{id}", h.Leave.DeleteLeaveType)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/", h.Leave.ListRequests)
				r.Get("/{id}", h.Leave.GetRequest)
				r.Post("/{id}/approve", h.Leave.Approve)
				r.Post("/{id}/reject", h.Leave.Reject)
				r.Post("/{id}/cancel", h.Leave.Cancel)
			})

			r.Route("/performance-reviews", func(r chi.Router) {
				r.Post("/", h.Performance.Create)
				r.Get("/", h.Performance.List)
				r.Get("/{id}", h.Performance.Get)
				r.Put("/{id}", h.Performance.Update)
				r.Post("/{id}/finalize", h.Performance.Finalize)
				r.Delete("/{id}", h.Performance.Delete)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", h.Attendance.Create)
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.Document.Upload)
				r.Get("/", h.Document.List)
				r.Get("/{id}", h.Document.Get)
				r.Get("/{id}/download", h.Document.Download)
				r.Put("/{id}", h.Document.Update)
				r.Delete("/{id}", h.Document.Delete)
			})

			r.Get("/dashboard/overview", h.Dashboard.Overview)
		})
	})

	return r
}
