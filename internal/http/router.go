package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"schuldwijzer/internal/http/affordability"
	"schuldwijzer/internal/http/debt"
	"schuldwijzer/internal/http/letter"
	"schuldwijzer/internal/http/ratelimit"
	"schuldwijzer/internal/http/workflow"
)

func New(
	debtsV1 *debt.Handler,
	affordabilityV1 *affordability.Handler,
	lettersV1 *letter.Handler,
	workflowV1 *workflow.Handler,
	limiter *ratelimit.Limiter,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(limiter.Middleware)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/debts", func(r chi.Router) {
			debtsV1.Routes(r)
			affordabilityV1.Routes(r)

			r.Route("/{id}/workflow", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				workflowV1.Routes(r)
			})
		})

		r.Route("/letters", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			lettersV1.Routes(r)
		})
	})

	return router
}
