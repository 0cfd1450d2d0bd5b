package api

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/greengirl/dashboard/internal/api/handler"
	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/session"
)

// Backend is everything the handlers read from and write to.
type Backend interface {
	handler.Authenticator
	handler.ProfileService
	handler.UserAdmin
	handler.MaterialStore
	handler.ActivityStore
	handler.LookupStore
}

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger    handler.Pinger
	RedisPinger handler.Pinger
	Version     string

	Backend  Backend
	Clients  handler.SessionClients
	Sessions middleware.SessionConfig
	Limiter  *middleware.LoginLimiter
	PageSize int
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.RedisPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	prefs := handler.NewPreferencesHandler(deps.Sessions.SecureCookie)
	r.Get("/preferences/sidebar", prefs.GetSidebar)
	r.Put("/preferences/sidebar", prefs.PutSidebar)

	if deps.Backend == nil {
		return r
	}

	b := deps.Backend
	authHandler := handler.NewAuthHandler(b, deps.Clients)
	profileHandler := handler.NewProfileHandler(b)
	userHandler := handler.NewUserHandler(b)
	materialHandler := handler.NewMaterialHandler(b, b, deps.PageSize)
	activityHandler := handler.NewActivityHandler(b, b, deps.PageSize)
	lookupHandler := handler.NewLookupHandler(b, b)
	reportHandler := handler.NewReportHandler(b, b, b)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(deps.Sessions))

		r.Get("/auth/session", authHandler.Session)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAnonymous())
			if deps.Limiter != nil {
				r.Use(deps.Limiter.Middleware)
			}
			r.Post("/auth/login", authHandler.Login)
		})

		protect := func(route session.Route) func(http.Handler) http.Handler {
			return middleware.RequireRoute(route)
		}

		r.With(protect(session.DashboardRoute)).Post("/auth/logout", authHandler.Logout)
		r.With(protect(session.DashboardRoute)).Get("/nav", prefs.Nav)
		r.With(protect(session.DashboardRoute)).Get("/dashboard", reportHandler.Dashboard)

		r.Route("/profile", func(r chi.Router) {
			r.Use(protect(session.ProfileRoute))
			r.Get("/", profileHandler.Get)
			r.Patch("/", profileHandler.Update)
			r.Patch("/credentials", profileHandler.UpdateCredentials)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(protect(session.UsersRoute))
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Patch("/{id}/role", userHandler.UpdateRole)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/materials", func(r chi.Router) {
			r.Use(protect(session.MaterialsRoute))
			r.Get("/", materialHandler.List)
			r.Post("/", materialHandler.Create)
			r.Get("/export.csv", materialHandler.Export)
			r.Patch("/{id}", materialHandler.Update)
			r.Delete("/{id}", materialHandler.Delete)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Use(protect(session.ActivitiesRoute))
			r.Get("/", activityHandler.List)
			r.Post("/", activityHandler.Create)
			r.Get("/export.csv", activityHandler.Export)
			r.Patch("/{id}", activityHandler.Update)
			r.Delete("/{id}", activityHandler.Delete)
		})

		r.Route("/lookups", func(r chi.Router) {
			r.Use(protect(session.DashboardRoute))
			r.Get("/projects", lookupHandler.Projects)
			r.Get("/activity-types", lookupHandler.ActivityTypes)
		})

		r.Route("/storage", func(r chi.Router) {
			r.Use(protect(session.DashboardRoute))
			r.Get("/", lookupHandler.Storage)
			r.With(protect(session.StorageAdminRoute)).Put("/{type}", lookupHandler.UpdateCapacity)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(protect(session.ReportsRoute))
			r.Get("/", reportHandler.Report)
			r.Get("/export.csv", reportHandler.ExportCSV)
			r.Get("/export.pdf", reportHandler.ExportPDF)
		})
	})

	return r
}
