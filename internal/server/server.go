package server

import (
	"toko-storefront/internal/handler"
	"toko-storefront/internal/middleware"
	"toko-storefront/internal/repository"
	"toko-storefront/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	jwtSecret       string
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	reviewHandler   *handler.ReviewHandler
	contactHandler  *handler.ContactHandler
}

func NewServer(
	jwtSecret string,
	catalogService service.CatalogService,
	cartService service.CartService,
	checkoutService service.CheckoutService,
	reviewService service.ReviewService,
	contactService service.ContactService,
	productRepo repository.ProductRepository,
) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		jwtSecret:       jwtSecret,
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		cartHandler:     handler.NewCartHandler(cartService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		reviewHandler:   handler.NewReviewHandler(reviewService, productRepo),
		contactHandler:  handler.NewContactHandler(contactService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog (public) --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:slug", s.catalogHandler.ProductDetail)
	api.GET("/search", s.catalogHandler.Search)
	api.GET("/category/:category", s.catalogHandler.ByCategory)

	// -------- contact (public) --------
	api.POST("/contact", s.contactHandler.Submit)

	// -------- authenticated storefront --------
	auth := api.Group("", middleware.AuthMiddleware(s.jwtSecret))
	auth.GET("/cart", s.cartHandler.GetCart)
	auth.POST("/cart/items/:slug", s.cartHandler.AddItem)
	auth.DELETE("/cart/items/:slug", s.cartHandler.RemoveItem)

	auth.GET("/checkout", s.checkoutHandler.BeginCheckout)
	auth.POST("/checkout", s.checkoutHandler.SubmitCheckout)
	auth.POST("/checkout/card", s.checkoutHandler.PayWithCard)
	auth.GET("/payments", s.checkoutHandler.PaymentHistory)

	auth.POST("/products/:slug/ratings", s.reviewHandler.AddRating)
	auth.POST("/products/:slug/comments", s.reviewHandler.AddComment)

	// -------- paypal callbacks --------
	auth.GET("/paypal/return", s.checkoutHandler.PaypalReturn)
	auth.GET("/paypal/cancel", s.checkoutHandler.PaypalCancel)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
