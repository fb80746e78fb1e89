package routes

import (
	"context"
	"log"
	"time"

	_ "comercial_moveis/docs" // This will be auto-generated
	"comercial_moveis/internal/adapter/export"
	"comercial_moveis/internal/adapter/http/handlers"
	"comercial_moveis/internal/adapter/persistence/repository"
	"comercial_moveis/internal/adapter/persistence/session"
	"comercial_moveis/internal/config"
	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/infrastructure/database"
	"comercial_moveis/internal/infrastructure/metrics"
	"comercial_moveis/internal/infrastructure/payments"
	"comercial_moveis/internal/infrastructure/probe"
	"comercial_moveis/internal/usecase"
	"comercial_moveis/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(cfg)

	log.Printf("[http][server] listening addr=%s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	locale := cfg.Locale()
	ddb := database.ConnectDynamoDB(cfg)

	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.BudgetsTable)
	contractRepo := repository.NewContractDynamoRepository(ddb, cfg.ContractsTable)
	paymentRepo := repository.NewContractPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	simulationUseCase := usecase.NewSimulationUseCase(newSessionStore(cfg), budget.WithTolerance(cfg.ReconciliationTolerance))
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, simulationUseCase)
	contractUseCase := usecase.NewContractUseCase(contractRepo, budgetRepo, simulationUseCase)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewContractPaymentUseCase(paymentRepo, contractRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	backendProbe := probe.NewClient(cfg.BackendAPIURL, cfg.BackendTimeout, cfg.BackendHeaders)
	diagnosticsUseCase := usecase.NewDiagnosticsUseCase(backendProbe)

	simulationHandler := handlers.NewSimulationHandler(simulationUseCase, locale)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, locale)
	contractHandler := handlers.NewContractHandler(contractUseCase, locale)
	paymentHandler := handlers.NewContractPaymentHandler(paymentUseCase, locale, cfg.PaymentGatewayMock)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(diagnosticsUseCase)

	views := exportViews{
		xlsx: export.NewXLSXView(locale),
		json: export.JSONView{Locale: locale},
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1, diagnosticsHandler)
	addSimulationRoutes(v1, simulationHandler, budgetHandler, contractHandler, views)
	addBudgetRoutes(v1, budgetHandler)
	addContractRoutes(v1, contractHandler, paymentHandler)
	addPaymentRoutes(v1, paymentHandler)
}

// newSessionStore prefers Redis so sessions are shared between replicas.
// Without REDIS_URL, or when Redis is unreachable, sessions stay in memory.
func newSessionStore(cfg config.Config) interfaces.ISessionStore {
	if cfg.RedisURL == "" {
		log.Printf("[session][store] using memory store ttl=%s", cfg.SessionTTL)
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb, err := session.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Printf("[session][store] redis unavailable, using memory store err=%v", err)
		return session.NewMemoryStore(cfg.SessionTTL)
	}
	log.Printf("[session][store] using redis store ttl=%s", cfg.SessionTTL)
	return session.NewRedisStore(rdb, cfg.SessionTTL)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
