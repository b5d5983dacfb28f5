package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"snackshop/app/controller"
)

type Controllers struct {
	Catalog  *controller.CatalogController
	Cart     *controller.CartController
	Checkout *controller.CheckoutController
	Settings *controller.SettingsController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NewRouter wires every endpoint. metrics serves GET /metrics when non-nil.
func NewRouter(controllers *Controllers, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/snacks", controllers.Catalog.ListSnacks)
		r.Get("/snacks/{id}", controllers.Catalog.GetSnack)

		// Cart
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.Cart.GetCart)
			r.Delete("/", controllers.Cart.ClearCart)
			r.Post("/items", controllers.Cart.AddItem)
			r.Put("/items/{id}", controllers.Cart.UpdateItem)
			r.Delete("/items/{id}", controllers.Cart.RemoveItem)
			r.Post("/checkout", controllers.Cart.Checkout)
		})

		// Checkout with an explicit line-item payload
		r.Post("/checkout", controllers.Checkout.Checkout)

		// Settings
		r.Get("/settings", controllers.Settings.GetSettings)
		r.Post("/settings/{flag}/toggle", controllers.Settings.Toggle)
	})

	return r
}
