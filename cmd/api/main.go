package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paglink/checkout-api/internal/config"
	"github.com/paglink/checkout-api/internal/infra/database"
	"github.com/paglink/checkout-api/internal/infra/gateway"
	"github.com/paglink/checkout-api/internal/infra/http/handlers"
	custommw "github.com/paglink/checkout-api/internal/infra/http/middleware"
	"github.com/paglink/checkout-api/internal/infra/integration/iugu"
	"github.com/paglink/checkout-api/internal/infra/integration/mercadopago"
	"github.com/paglink/checkout-api/internal/infra/integration/pagseguro"
	"github.com/paglink/checkout-api/internal/infra/mail"
	"github.com/paglink/checkout-api/internal/infra/queue"
	"github.com/paglink/checkout-api/internal/logger"
	"github.com/paglink/checkout-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("checkout-api", cfg.App.LogLevel, cfg.App.LogFormat)

	db, err := database.NewDBConnection(cfg.DB.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQP.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no RabbitMQ")
	}
	defer rabbitMQ.Close()

	// 1. Repositórios
	checkoutRepo := database.NewCheckoutRepository(db)
	productRepo := database.NewProductRepository(db)
	bumpRepo := database.NewOrderBumpRepository(db)
	couponRepo := database.NewCouponRepository(db)
	paymentMethodRepo := database.NewPaymentMethodRepository(db)
	orderRepo := database.NewOrderRepository(db)

	// 2. Gateways e adapters
	gateways := gateway.NewRegistry()
	gateways.Register("mercadopago", mercadopago.NewClient(
		cfg.MercadoPago.AccessToken, cfg.MercadoPago.BaseURL, log,
	))
	gateways.Register("pagseguro", pagseguro.NewClient(
		cfg.PagSeguro.Token, cfg.PagSeguro.BaseURL, log,
	))
	gateways.Register("iugu", iugu.NewClient(
		cfg.Iugu.Token, cfg.Iugu.BaseURL, log,
	))

	producer := queue.NewProducer(rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From,
	)

	// 3. Worker de confirmação (consome a fila e envia o e-mail)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, log)
	go func() {
		if err := worker.Start(queue.QueueName); err != nil {
			log.Error().Err(err).Msg("worker encerrado")
		}
	}()

	// 4. UseCases
	getCheckoutUC := usecase.NewGetCheckoutUseCase(
		checkoutRepo, productRepo, bumpRepo, couponRepo, paymentMethodRepo, log,
	)
	quoteUC := usecase.NewQuoteUseCase(getCheckoutUC)
	applyCouponUC := usecase.NewApplyCouponUseCase(getCheckoutUC)
	placeOrderUC := usecase.NewPlaceOrderUseCase(
		getCheckoutUC, orderRepo, gateways, producer, log,
	)

	// 5. Handlers
	checkoutHandler := handlers.NewCheckoutHandler(getCheckoutUC)
	quoteHandler := handlers.NewQuoteHandler(quoteUC)
	couponHandler := handlers.NewCouponHandler(applyCouponUC)
	orderHandler := handlers.NewOrderHandler(placeOrderUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, []string{"mercadopago", "pagseguro", "iugu"})

	// 6. Router
	r := chi.NewRouter()
	r.Use(custommw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.App.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/api/checkout/{slug}", checkoutHandler.Handle)
	r.Post("/api/checkout/{slug}/quote", quoteHandler.Handle)
	r.Post("/api/checkout/{slug}/coupon", couponHandler.Handle)
	r.Post("/api/checkout/{slug}/process", orderHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.App.Port
	log.Info().Str("addr", addr).Msg("servidor do checkout no ar")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrado")
	}
}
