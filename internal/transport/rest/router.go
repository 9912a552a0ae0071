package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport/middleware"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
	"github.com/frahmantamala/hr-management/internal/user"
	"github.com/frahmantamala/hr-management/internal/vacation"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	attendanceHandler *attendance.Handler,
	vacationHandler *vacation.Handler,
	roles *auth.RoleAuthorization,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec and Swagger UI at root
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Health check routes
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Auth routes, no token required
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected routes that require a verified identity
	router.Group(func(pr chi.Router) {
		pr.Use(authHandler.AuthMiddleware)

		// Attendance is gated on the user role only; admins do not clock in.
		pr.Route("/attendance", func(ar chi.Router) {
			ar.Use(roles.RequireUser())
			ar.Post("/checkin", attendanceHandler.CheckIn)
			ar.Post("/checkout", attendanceHandler.CheckOut)
			ar.Get("/today", attendanceHandler.Today)
			ar.Get("/monthly", attendanceHandler.Monthly)
		})

		pr.Route("/profile", func(ur chi.Router) {
			ur.Use(roles.RequireAny())
			ur.Get("/", userHandler.GetProfile)
			ur.Put("/", userHandler.UpdateProfile)
			ur.Put("/password", userHandler.ChangePassword)
		})

		pr.Route("/vacations", func(vr chi.Router) {
			vr.Group(func(anyr chi.Router) {
				anyr.Use(roles.RequireAny())
				anyr.Get("/balance", vacationHandler.Balance)
				anyr.Post("/request", vacationHandler.RequestVacation)
			})

			vr.Group(func(adr chi.Router) {
				adr.Use(roles.RequireAdmin())
				adr.Get("/all", vacationHandler.All)
			})
		})
	})
}
