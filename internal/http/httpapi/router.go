package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"donatehub/internal/http/handlers"
	"donatehub/internal/middleware"
)

// Options configures the router middleware chain.
type Options struct {
	Verifier        middleware.TokenVerifier
	Logger          zerolog.Logger
	CORSOrigins     []string
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	RateLimitPerMin int
}

// NewRouter assembles the HTTP surface. Public routes stay outside the
// auth middleware; protected subtrees verify the bearer token on every
// request.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.CORS(opts.CORSOrigins),
		middleware.Locale(opts.DefaultLocale, opts.CountryLookup),
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
	)
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}

	auth := middleware.Auth(opts.Verifier)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)
		r.With(auth).Get("/me", app.Me)
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Get("/{id}", app.CampaignsGet)
		r.With(auth).Post("/", app.CampaignsCreate)
		r.With(auth).Put("/{id}", app.CampaignsUpdate)
		r.With(auth).Delete("/{id}", app.CampaignsDelete)
		r.With(auth).Get("/ngo/{userId}", app.CampaignsByOwner)
	})

	r.Route("/donations", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", app.DonationsCreate)
		r.Get("/history", app.DonationsHistory)
		r.Get("/campaign/{campaignId}", app.DonationsByCampaign)
		r.Get("/stats", app.DonationsStats)
	})

	return r
}
