package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/bundle-builder/internal/dashboard-api/infra/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handler.ListProducts)

		r.Route("/bundles", func(r chi.Router) {
			r.Get("/", handler.ListBundles)
			r.Post("/", handler.CreateBundle)
			r.Post("/preview", handler.PreviewBundle)
			r.Get("/{id}", handler.GetBundle)
			r.Patch("/{id}", handler.UpdateBundle)
			r.Delete("/{id}", handler.DeleteBundle)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", handler.GetCart)
			r.Delete("/", handler.ClearCart)
			r.Post("/items", handler.AddToCart)
			r.Put("/items/{bundleID}", handler.UpdateCartQuantity)
			r.Delete("/items/{bundleID}", handler.RemoveFromCart)
		})

		r.Get("/metrics", handler.GetMetrics)
		r.Get("/analytics", handler.GetAnalytics)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", handler.ListCustomers)
			r.Get("/summary", handler.CustomerSummary)
			r.Get("/{id}", handler.GetCustomer)
		})
	})
	return r
}
