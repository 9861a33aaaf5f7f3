package server

import (
	"context"
	"errors"
	"net/http"

	"scriptmarket/internal/handler"
	mw "scriptmarket/internal/middleware"
	"scriptmarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Services bundles everything the HTTP layer serves. Cart and Purchase are optional.
type Services struct {
	Catalog  service.CatalogService
	Checkout service.CheckoutService
	Payment  service.PaymentService
	Library  service.LibraryService
	Favorite service.FavoriteService
	Auth     service.AuthService
	Cart     service.CartService
	Purchase service.PurchaseService
	Health   service.HealthService
}

type Options struct {
	BaseURL        string
	AllowedOrigins []string
	Cookie         handler.CookieOptions
}

type Server struct {
	echo   *echo.Echo
	logger zerolog.Logger
	auth   *mw.Auth

	scriptHandler   *handler.ScriptHandler
	checkoutHandler *handler.CheckoutHandler
	paymentHandler  *handler.PaymentHandler
	libraryHandler  *handler.LibraryHandler
	favoriteHandler *handler.FavoriteHandler
	authHandler     *handler.AuthHandler
	cartHandler     *handler.CartHandler
	purchaseHandler *handler.PurchaseHandler
	healthHandler   *handler.HealthHandler
}

func NewServer(logger zerolog.Logger, auth *mw.Auth, services Services, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:            e,
		logger:          logger,
		auth:            auth,
		scriptHandler:   handler.NewScriptHandler(services.Catalog),
		checkoutHandler: handler.NewCheckoutHandler(services.Checkout),
		paymentHandler:  handler.NewPaymentHandler(services.Payment, opts.BaseURL),
		libraryHandler:  handler.NewLibraryHandler(services.Library),
		favoriteHandler: handler.NewFavoriteHandler(services.Favorite),
		authHandler:     handler.NewAuthHandler(services.Auth, opts.Cookie),
		healthHandler:   handler.NewHealthHandler(services.Health),
	}
	if services.Cart != nil {
		s.cartHandler = handler.NewCartHandler(services.Cart)
	}
	if services.Purchase != nil {
		s.purchaseHandler = handler.NewPurchaseHandler(services.Purchase)
	}

	e.HTTPErrorHandler = s.handleError

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{opts.BaseURL}
	}

	e.Use(mw.RequestID())
	e.Use(mw.ContextLogger(logger))
	e.Use(mw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	optional := s.auth.OptionalAuth()
	required := s.auth.RequireAuth()

	api := s.echo.Group("/api")

	api.GET("/health", s.healthHandler.Health)

	// -------- catalog --------
	api.GET("/scripts", s.scriptHandler.List, optional)
	api.GET("/scripts/popular", s.scriptHandler.Popular)
	api.GET("/scripts/facets", s.scriptHandler.Facets)
	api.GET("/scripts/:id", s.scriptHandler.Get)

	// -------- auth --------
	api.POST("/auth/signup", s.authHandler.Signup)
	api.POST("/auth/login", s.authHandler.Login)
	api.POST("/auth/logout", s.authHandler.Logout)
	api.GET("/me", s.authHandler.Me, required)
	api.PATCH("/me", s.authHandler.UpdateMe, required)
	api.GET("/library", s.libraryHandler.Library, required)

	// -------- purchase flow --------
	// services check identity themselves so their validation order holds
	api.POST("/checkout", s.checkoutHandler.CreateSession, optional)
	api.GET("/download/:id", s.libraryHandler.Download, optional)
	api.GET("/favorites", s.favoriteHandler.List, optional)
	api.POST("/favorites", s.favoriteHandler.Add, optional)
	api.DELETE("/favorites", s.favoriteHandler.Remove, optional)

	if s.purchaseHandler != nil {
		api.POST("/purchase", s.purchaseHandler.DemoPurchase, required)
	}

	if s.cartHandler != nil {
		cart := api.Group("/cart", required)
		cart.GET("", s.cartHandler.Get)
		cart.PUT("", s.cartHandler.Replace)
		cart.DELETE("", s.cartHandler.Clear)
		cart.POST("/items", s.cartHandler.AddItem)
		cart.PATCH("/items/:id", s.cartHandler.UpdateQuantity)
		cart.DELETE("/items/:id", s.cartHandler.RemoveItem)
	}

	// -------- webhooks / callbacks --------
	webhookLimit := middleware.BodyLimit("64K")
	api.POST("/webhooks/stripe", s.paymentHandler.StripeWebhook, webhookLimit)
	api.POST("/webhooks/paypal", s.paymentHandler.PaypalWebhook, webhookLimit)
	api.GET("/paypal/success", s.paymentHandler.HandlePaypalSuccess)
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleError renders every error as {"error": "..."} and keeps internal detail in the logs.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
		if he.Internal != nil {
			err = he.Internal
		}
	}

	if code >= http.StatusInternalServerError {
		logger := zerolog.Ctx(c.Request().Context())
		if logger.GetLevel() == zerolog.Disabled {
			logger = &s.logger
		}
		logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, &errorResponse{Error: msg})
	}
	if writeErr != nil {
		s.logger.Error().Err(writeErr).Msg("write error response")
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
