// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"dreamweave/internal/adapters/in/http/handlers"
	"dreamweave/internal/adapters/in/http/middleware"
	usecase "dreamweave/internal/application/usecase"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	CartUC     *usecase.CartUsecase
	ProductUC  *usecase.ProductUsecase
	ReviewUC   *usecase.ReviewUsecase
	OrderUC    *usecase.OrderUsecase
	FavoriteUC *usecase.FavoriteUsecase
	UserUC     *usecase.UserUsecase

	FirebaseAuth *middleware.FirebaseAuthClient
}

// NewRouter sets up HTTP routing for all storefront endpoints.
//
// Public reads (catalog, review listing) are open; everything touching a
// user's own data requires a verified Firebase ID token; /admin/* additionally
// requires the admin role.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	auth := &middleware.AuthMiddleware{FirebaseAuth: deps.FirebaseAuth}
	admin := &middleware.AdminOnly{}
	if deps.UserUC != nil {
		admin.Checker = deps.UserUC
	}

	authed := func(h http.Handler) http.Handler {
		return auth.Handler(h)
	}
	adminOnly := func(h http.Handler) http.Handler {
		return auth.Handler(admin.Handler(h))
	}

	// Mount only what has a usecase wired.
	if deps.ProductUC != nil {
		public := handlers.NewProductHandler(deps.ProductUC)
		mux.Handle("/products", public)
		mux.Handle("/products/", public)

		ah := adminOnly(handlers.NewAdminProductHandler(deps.ProductUC))
		mux.Handle("/admin/products", ah)
		mux.Handle("/admin/products/", ah)
	}

	if deps.ReviewUC != nil {
		// Listing is public; eligibility/submit check the token inside the
		// handler, so the whole subtree goes through optional auth.
		list := handlers.NewReviewHandler(deps.ReviewUC)
		mux.Handle("/reviews/", optionalAuth(auth, list))
	}

	if deps.CartUC != nil {
		h := authed(handlers.NewCartHandler(deps.CartUC))
		mux.Handle("/cart", h)
		mux.Handle("/cart/", h)
	}

	if deps.OrderUC != nil {
		h := authed(handlers.NewOrderHandler(deps.OrderUC))
		mux.Handle("/orders", h)
		mux.Handle("/orders/", h)

		ah := adminOnly(handlers.NewAdminOrderHandler(deps.OrderUC))
		mux.Handle("/admin/orders", ah)
		mux.Handle("/admin/orders/", ah)
	}

	if deps.FavoriteUC != nil {
		h := authed(handlers.NewFavoriteHandler(deps.FavoriteUC))
		mux.Handle("/favorites", h)
		mux.Handle("/favorites/", h)
	}

	if deps.UserUC != nil {
		mux.Handle("/users/", authed(handlers.NewUserHandler(deps.UserUC)))
		mux.Handle("/admin/customers", adminOnly(handlers.NewAdminCustomerHandler(deps.UserUC)))
	}

	return mux
}

// optionalAuth verifies a bearer token when one is present and otherwise
// passes the request through anonymously. Review listing stays public while
// eligibility and submit can still read the uid from the context.
func optionalAuth(auth *middleware.AuthMiddleware, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		auth.Handler(next).ServeHTTP(w, r)
	})
}
