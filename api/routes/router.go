package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecolinkdev/ecolink-back/api/controllers"
	"github.com/ecolinkdev/ecolink-back/api/middleware"
	"github.com/ecolinkdev/ecolink-back/internal/auth"
	"github.com/ecolinkdev/ecolink-back/internal/collections"
	"github.com/ecolinkdev/ecolink-back/internal/cooperatives"
	"github.com/ecolinkdev/ecolink-back/internal/users"
	"github.com/ecolinkdev/ecolink-back/pkg/config"
	"github.com/ecolinkdev/ecolink-back/pkg/db"
	"github.com/ecolinkdev/ecolink-back/pkg/logger"
)

// NewRouter assembles the HTTP surface. Public routes are registration,
// login, the cooperative directory, and health; everything touching
// collections requires a bearer token, and the all-owners listing
// additionally requires the admin role.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	authService auth.Service,
	usersService users.Service,
	collectionsService collections.Service,
	cooperativesService cooperatives.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/", controllers.UsersRegister(usersService, logg))
	})

	r.Route("/api/v1/cooperatives", func(r chi.Router) {
		r.Get("/", controllers.CooperativesList(cooperativesService, logg))
		r.Post("/", controllers.CooperativesCreate(cooperativesService, logg))
	})

	r.Route("/api/v1/collections", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Post("/", controllers.CollectionsCreate(collectionsService, logg))
		r.Get("/user", controllers.CollectionsListOwn(collectionsService, logg))
		r.With(middleware.RequireRole(middleware.AdminRole, logg)).
			Get("/all", controllers.CollectionsListAll(collectionsService, logg))
		r.Patch("/{id}", controllers.CollectionsUpdate(collectionsService, logg))
	})

	return r
}
