package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/shop-inventory/docs"
	"github.com/rogerio-castellano/shop-inventory/internal/http/handlers"
	mw "github.com/rogerio-castellano/shop-inventory/internal/http/middleware"
	rl "github.com/rogerio-castellano/shop-inventory/internal/http/rate_limiter"
)

type Options struct {
	Logger zerolog.Logger
	// Limiter throttles /shop per client address. Nil disables rate limiting.
	Limiter        *rl.Limiter
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(opts.Logger))
	r.Use(mw.CORS(opts.AllowedOrigins))

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/shop", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter))
		}
		r.Get("/", handlers.GetProductsHandler)
		r.Post("/", handlers.CreateProductHandler)
		r.Get("/{id}", handlers.GetProductByIDHandler)
		r.Put("/{id}", handlers.UpdateProductHandler)
		r.Delete("/{id}", handlers.DeleteProductHandler)
	})
	return r
}
