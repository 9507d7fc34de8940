package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"weardistrict/internal/domain"
	checkoutsvc "weardistrict/internal/service/checkout"
	productsvc "weardistrict/internal/service/product"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ProductService interface {
	List() []domain.Product
	Count() int
	GetByID(id int) (domain.Product, bool)
	Browse(q productsvc.Query) productsvc.Page
	Categories() []string
	Add(p domain.Product) (domain.Product, error)
	Update(id int, patch domain.ProductPatch) (domain.Product, error)
	Remove(id int) bool
}

type CartService interface {
	Lines() []domain.CartLine
	Add(ctx context.Context, p domain.Product, size string, qty int) error
	Remove(ctx context.Context, productID int, size string) bool
	SetQuantity(ctx context.Context, productID int, size string, qty int) error
	Clear(ctx context.Context)
	TotalPrice() domain.Money
	TotalItems() int
}

type AuthService interface {
	Register(ctx context.Context, email, password, name string) domain.Result
	Login(ctx context.Context, email, password string, adminMode bool) domain.Result
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) domain.Result
	Session() domain.Session
	Users() []domain.User
	UserCount() int
}

type CheckoutService interface {
	Summary() domain.Summary
	PlaceOrder(ctx context.Context, form checkoutsvc.Form) (*domain.Order, error)
	Stats() checkoutsvc.Stats
}

// Deps groups the services the router needs.
type Deps struct {
	ProductSvc  ProductService
	CartSvc     CartService
	AuthSvc     AuthService
	CheckoutSvc CheckoutService
	// Ready checks durable storage for /readyz. Optional.
	Ready func(context.Context) error
	// Gatherer backs /metrics. Optional.
	Gatherer     prometheus.Gatherer
	AllowOrigins []string
}

func (d Deps) validate() error {
	switch {
	case d.ProductSvc == nil:
		return errors.New("product service is required")
	case d.CartSvc == nil:
		return errors.New("cart service is required")
	case d.AuthSvc == nil:
		return errors.New("auth service is required")
	case d.CheckoutSvc == nil:
		return errors.New("checkout service is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.AllowOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Ready))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/products", browseProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))
	router.GET("/categories", categoriesHandler(deps.ProductSvc))

	router.GET("/cart", getCartHandler(deps.CartSvc))
	router.DELETE("/cart", clearCartHandler(deps.CartSvc))
	router.POST("/cart/lines", addCartLineHandler(deps.CartSvc, deps.ProductSvc))
	router.PUT("/cart/lines/:productId/:size", setCartQuantityHandler(deps.CartSvc))
	router.DELETE("/cart/lines/:productId/:size", removeCartLineHandler(deps.CartSvc))

	router.GET("/checkout/summary", checkoutSummaryHandler(deps.CheckoutSvc))
	router.POST("/checkout", placeOrderHandler(deps.CheckoutSvc, logger))

	router.POST("/auth/register", registerHandler(deps.AuthSvc))
	router.POST("/auth/login", loginHandler(deps.AuthSvc))
	router.POST("/auth/logout", logoutHandler(deps.AuthSvc))
	router.GET("/me", meHandler(deps.AuthSvc))
	router.PATCH("/me", updateProfileHandler(deps.AuthSvc))

	admin := router.Group("/admin", requireElevated(deps.AuthSvc))
	admin.POST("/products", createProductHandler(deps.ProductSvc))
	admin.PATCH("/products/:id", updateProductHandler(deps.ProductSvc))
	admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))
	admin.GET("/products/export", exportProductsHandler(deps.ProductSvc, logger))
	admin.GET("/users", listUsersHandler(deps.AuthSvc))
	admin.GET("/stats", statsHandler(deps.ProductSvc, deps.AuthSvc, deps.CheckoutSvc))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// requireElevated rejects requests unless the session is an admin login made
// in admin mode.
func requireElevated(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.Session()
		if !sess.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if !sess.Elevated {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}
		c.Next()
	}
}
