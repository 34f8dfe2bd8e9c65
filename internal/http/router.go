package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ebisa/contabil/internal/http/auth"
	"github.com/ebisa/contabil/internal/http/chartofaccounts"
	"github.com/ebisa/contabil/internal/http/company"
	"github.com/ebisa/contabil/internal/http/trialbalance"
)

type Options struct {
	CORSOrigins []string
	JWTSecret   string
	// DefaultUser is the importing user when JWTSecret is empty.
	DefaultUser string
}

func New(
	opts Options,
	trialBalancesV1 *trialbalance.Handler,
	chartsV1 *chartofaccounts.Handler,
	companiesV1 *company.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware([]byte(opts.JWTSecret), opts.DefaultUser))

		r.Route("/balancetes", trialBalancesV1.Routes)
		r.Route("/planos", chartsV1.Routes)

		r.Route("/empresas", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			companiesV1.Routes(r)
		})
	})

	return router
}
