package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storefront-labs/storefront-backend/api/controllers"
	"github.com/storefront-labs/storefront-backend/api/middleware"
	"github.com/storefront-labs/storefront-backend/internal/auth"
	"github.com/storefront-labs/storefront-backend/internal/cart"
	"github.com/storefront-labs/storefront-backend/internal/catalog"
	"github.com/storefront-labs/storefront-backend/internal/orders"
	"github.com/storefront-labs/storefront-backend/pkg/config"
	"github.com/storefront-labs/storefront-backend/pkg/logger"
)

// NewRouter assembles the HTTP surface. Catalog reads and writes are open;
// the cart, orders, and profile routes require a bearer token.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	authService auth.Service,
	catalogService catalog.Service,
	cartService cart.Service,
	orderService orders.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.Liveness())
		r.Get("/ready", controllers.Readiness(dbPinger, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(authService, logg))
			r.Post("/login", controllers.Login(authService, logg))
			r.With(middleware.RequireUser(authService, logg)).Get("/me", controllers.Me(logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogService, logg))
			r.Post("/", controllers.CreateProduct(catalogService, logg))
			r.Get("/{id}", controllers.GetProduct(catalogService, logg))
			r.Put("/{id}", controllers.UpdateProduct(catalogService, logg))
			r.Delete("/{id}", controllers.DeleteProduct(catalogService, logg))
		})

		r.Get("/categories", controllers.ListCategories(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser(authService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(cartService, logg))
				r.Post("/", controllers.AddToCart(cartService, logg))
				r.Put("/{id}", controllers.UpdateCartItem(cartService, logg))
				r.Delete("/{id}", controllers.RemoveCartItem(cartService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.CreateOrder(orderService, logg))
				r.Get("/", controllers.ListOrders(orderService, logg))
			})
		})
	})

	return r
}
