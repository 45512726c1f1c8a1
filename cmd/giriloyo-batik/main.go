package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/digiri/giriloyo-batik/docs"
	"github.com/digiri/giriloyo-batik/internal/api/handlers"
	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/cache"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/dispatch"
	"github.com/digiri/giriloyo-batik/internal/events"
	"github.com/digiri/giriloyo-batik/internal/gateway"
	"github.com/digiri/giriloyo-batik/internal/health"
	"github.com/digiri/giriloyo-batik/internal/metrics"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/tracing"
	"github.com/digiri/giriloyo-batik/pkg/crossmint"
	midtransClient "github.com/digiri/giriloyo-batik/pkg/midtrans"
	"github.com/digiri/giriloyo-batik/pkg/sendGrid"
	stripeClient "github.com/digiri/giriloyo-batik/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const cartEventBuffer = 16

//	@title						Batik Giriloyo API
//	@version					1.0
//	@description				Guest checkout storefront for Giriloyo batik with NFT certificates of authenticity.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Init(context.Background(), cfg.OTEL, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.Migrate(); err != nil {
		slog.Error("❌ Error migrating the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer redisCache.Close()

	rateLimiter := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)

	// Third-party clients
	jwtKey := []byte(cfg.Security.JWTKey)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	crossmintClient := crossmint.NewCrossmintClient(cfg.Crossmint)
	primary, others := paymentGateways(cfg)

	// Services
	bus := events.NewBus(cartEventBuffer)
	productService := service.NewProductService(repos.Product, redisCache)
	cartService := service.NewCartService(repos.Cart, productService, bus)
	orderService := service.NewOrderService(repos.Order, redisCache)
	notificationService := service.NewNotificationService(repos.Notification, sendGridClient)
	nftService := service.NewNFTService(repos.Order, orderService, productService, crossmintClient,
		notificationService, cfg.Certificate, cfg.Crossmint.ExternalURL, cfg.SendGrid.AdminEmail)

	dispatcher, err := newDispatcher(cfg, nftService.ProcessMintJob)
	if err != nil {
		slog.Error("❌ Error starting the mint dispatcher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	paymentService := service.NewPaymentService(primary, others, orderService, repos.PaymentEvent, dispatcher, cfg.Payment)
	checkoutService := service.NewCheckoutService(cartService, orderService, primary, rateLimiter, cfg.Payment, cfg.Certificate)
	guestService := service.NewGuestService(orderService, rateLimiter, jwtKey, cfg.Security.GuestTTL())
	bookingService := service.NewBookingService(repos.Booking, notificationService, rateLimiter,
		cfg.Booking.WhatsAppNumber, cfg.SendGrid.AdminEmail)

	// Handlers
	guestHandler := handlers.NewGuestHandler(guestService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	nftHandler := handlers.NewNFTHandler(nftService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	auth := middleware.NewAuthMiddleware(jwtKey)
	admin := middleware.NewAdminMiddleware(cfg.Security.AdminKeyHash)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("gateway", primary.Name()))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("POST /api/v1/guests", guestHandler.CreateSession())
	routerMux.HandleFunc("POST /api/v1/guests/claim", auth.Authenticate(guestHandler.ClaimOrder()))

	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/slug/{slug}", productHandler.GetProductBySlug())
	routerMux.HandleFunc("POST /api/v1/products", admin.RequireAdmin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", admin.RequireAdmin(productHandler.UpdateProduct()))

	routerMux.HandleFunc("GET /api/v1/carts", auth.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/carts", auth.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("GET /api/v1/carts/count", auth.Authenticate(cartHandler.ItemCount()))
	routerMux.HandleFunc("GET /api/v1/carts/events", auth.Authenticate(cartHandler.Events()))
	routerMux.HandleFunc("POST /api/v1/carts/items", auth.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/carts/items", auth.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/carts/items", auth.Authenticate(cartHandler.RemoveItem()))

	routerMux.HandleFunc("POST /api/v1/checkout", auth.Authenticate(checkoutHandler.Checkout()))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/pay", auth.Authenticate(checkoutHandler.RetryPayment()))

	routerMux.HandleFunc("GET /api/v1/orders", auth.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", auth.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}/status", auth.Authenticate(orderHandler.GetOrderStatus()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{id}/status", admin.RequireAdmin(orderHandler.UpdateOrderStatus()))

	routerMux.HandleFunc("POST /api/v1/payments", auth.Authenticate(paymentHandler.CreatePayment()))
	routerMux.HandleFunc("POST "+cfg.Payment.NotificationPath, paymentHandler.Notification("midtrans"))
	routerMux.HandleFunc("POST /api/v1/payments/webhook/stripe", paymentHandler.Notification("stripe"))

	routerMux.HandleFunc("POST /api/v1/nft/mint", admin.RequireAdmin(nftHandler.MintCertificate()))
	routerMux.HandleFunc("POST /api/v1/admin/orders/{id}/nft/retry", admin.RequireAdmin(nftHandler.RetryFailed()))
	routerMux.HandleFunc("GET /api/v1/nft/orders/{id}/status", auth.Authenticate(nftHandler.GetStatus()))
	routerMux.HandleFunc("GET /api/v1/nft/orders/{id}/certificates", auth.Authenticate(nftHandler.GetCertificates()))

	routerMux.HandleFunc("POST /api/v1/admin/notifications/email", admin.RequireAdmin(notificationHandler.SendEmail()))
	routerMux.HandleFunc("GET /api/v1/notifications", admin.RequireAdmin(notificationHandler.ListNotifications()))

	routerMux.HandleFunc("GET /api/v1/tours/packages", bookingHandler.ListPackages())
	routerMux.HandleFunc("POST /api/v1/tours/bookings", bookingHandler.CreateBooking())
	routerMux.HandleFunc("GET /api/v1/admin/tours/bookings", admin.RequireAdmin(bookingHandler.ListBookings()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTEL.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	// pending mint jobs finish before the database closes
	if err := dispatcher.Close(); err != nil {
		slog.Error("⚠️ Error closing the mint dispatcher", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}

// paymentGateways returns the configured primary gateway and any other
// gateway with credentials, whose notifications are still accepted.
func paymentGateways(cfg *config.Config) (gateway.Gateway, []gateway.Gateway) {
	var midtransGateway, stripeGateway gateway.Gateway

	if cfg.Midtrans.ServerKey != "" || cfg.Payment.Gateway == "midtrans" {
		client := midtransClient.NewMidtransClient(cfg.Midtrans.ServerKey, cfg.Midtrans.IsProduction, cfg.Payment.Timeout)
		midtransGateway = gateway.NewMidtransGateway(client, cfg.Payment, cfg.PublicURL)
	}

	if cfg.Stripe.APIKey != "" || cfg.Payment.Gateway == "stripe" {
		client := stripeClient.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
		stripeGateway = gateway.NewStripeGateway(client, cfg.Stripe, cfg.PublicURL)
	}

	if cfg.Payment.Gateway == "stripe" {
		if midtransGateway != nil {
			return stripeGateway, []gateway.Gateway{midtransGateway}
		}
		return stripeGateway, nil
	}

	if stripeGateway != nil {
		return midtransGateway, []gateway.Gateway{stripeGateway}
	}
	return midtransGateway, nil
}

// newDispatcher uses RabbitMQ when a broker is configured and an in-process
// worker pool otherwise.
func newDispatcher(cfg *config.Config, handler dispatch.Handler) (dispatch.MintDispatcher, error) {
	if cfg.AMQP.URL != "" {
		slog.Info("Mint jobs go through RabbitMQ", slog.String("queue", cfg.AMQP.MintQueue))
		d, err := dispatch.NewAMQPDispatcher(cfg.AMQP.URL, cfg.AMQP.MintQueue, cfg.Certificate.Workers, handler)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	slog.Info("Mint jobs run in process", slog.Int("workers", cfg.Certificate.Workers))
	return dispatch.NewPool(handler, cfg.Certificate.Workers, cfg.Certificate.QueueSize), nil
}
