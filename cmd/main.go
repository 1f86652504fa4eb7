package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/custodia-tech/wallet-service/internal/facades"
	"github.com/custodia-tech/wallet-service/internal/handlers"
	"github.com/custodia-tech/wallet-service/internal/jwt"
	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/middlewares"
	"github.com/custodia-tech/wallet-service/internal/networks"
	"github.com/custodia-tech/wallet-service/internal/repositories"
	"github.com/custodia-tech/wallet-service/internal/services"
	"github.com/custodia-tech/wallet-service/internal/signature"
	"github.com/custodia-tech/wallet-service/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config carries every runtime setting of the service.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	walletCacheTTL    time.Duration

	kafkaBrokers string
	kafkaTopic   string

	gatewayBaseURL string
	gatewayTimeout time.Duration

	networkRPCEndpoints map[string]string
	chainRPCTimeout     time.Duration
	hotWalletAddress    string

	signatureVerificationDisabled bool

	jwtSecretKey string
	jwtExp       time.Duration

	workerPollInterval   time.Duration
	workerPendingTimeout time.Duration
	workerBatchSize      int
}

// @title wallet-service API
// @version 1.0.0
// @description Custodial crypto wallet service: per-asset balances, on-chain withdrawals and external wallet links
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		seconds, err := getInt(key, defaultValue)
		return time.Duration(seconds) * time.Second, err
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "wallet")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.walletCacheTTL, err = getSeconds("WALLET_CACHE_TTL_SECOND", "30"); err != nil {
		return
	}

	// Kafka config, optional
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// Blockchain gateway config
	cfg.gatewayBaseURL = getEnv("GATEWAY_BASE_URL", "http://localhost:9090")
	if cfg.gatewayTimeout, err = getSeconds("GATEWAY_TIMEOUT_SECOND", "30"); err != nil {
		return
	}
	cfg.hotWalletAddress = getEnv("HOT_WALLET_ADDRESS", "")

	// Chain RPC config: "code=url,code=url". Networks listed here settle on
	// chain, everything else stays in the internal ledger.
	if cfg.networkRPCEndpoints, err = networks.ParseEndpoints(getEnv("NETWORK_RPC_ENDPOINTS", "")); err != nil {
		return
	}
	if cfg.chainRPCTimeout, err = getSeconds("CHAIN_RPC_TIMEOUT_SECOND", "15"); err != nil {
		return
	}

	cfg.signatureVerificationDisabled = getEnv("SIGNATURE_VERIFICATION_DISABLED", "false") == "true"

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExp, err = getSeconds("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Confirmation worker config
	if cfg.workerPollInterval, err = getSeconds("WORKER_POLL_INTERVAL_SECOND", "10"); err != nil {
		return
	}
	if cfg.workerPendingTimeout, err = getSeconds("WORKER_PENDING_TIMEOUT_SECOND", "300"); err != nil {
		return
	}
	if cfg.workerBatchSize, err = getInt("WORKER_BATCH_SIZE", "200"); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, gateway and chain RPC
// clients, wires the HTTP server and the confirmation worker, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional: without brokers events are logged and dropped
	var kafkaWriter *kafka.Writer
	if cfg.kafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, transaction events will not be published")
	}

	// Network registry and chain clients
	registry := networks.NewRegistry(cfg.networkRPCEndpoints)
	gatewayClient := facades.NewGatewayClient(cfg.gatewayBaseURL, cfg.gatewayTimeout)
	chainClient := facades.NewChainRPCClient(registry, cfg.chainRPCTimeout)
	verifier := signature.NewVerifier(cfg.signatureVerificationDisabled)

	// Initialize JWT service
	jwtService := jwt.New(cfg.jwtSecretKey, cfg.jwtExp)

	// Initialize repositories. Write paths join the per-request transaction
	// opened by TxMiddleware.
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	walletReadRepo := repositories.NewWalletReadRepository(db, txGetter)
	walletWriteRepo := repositories.NewWalletWriteRepository(db, txGetter)
	assetReadRepo := repositories.NewAssetReadRepository(db, txGetter)
	assetWriteRepo := repositories.NewAssetWriteRepository(db, txGetter)
	txReadRepo := repositories.NewTransactionReadRepository(db, txGetter)
	txWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	externalReadRepo := repositories.NewExternalWalletReadRepository(db, txGetter)
	externalWriteRepo := repositories.NewExternalWalletWriteRepository(db, txGetter)
	withdrawalWriteRepo := repositories.NewWithdrawalRequestWriteRepository(db, txGetter)
	walletCacheRepo := repositories.NewWalletCacheRepository(rdb, cfg.walletCacheTTL)

	// Initialize services
	deps := services.WalletServiceDeps{
		Wallets:          walletReadRepo,
		WalletWriter:     walletWriteRepo,
		Assets:           assetReadRepo,
		AssetWriter:      assetWriteRepo,
		Transactions:     txReadRepo,
		TxWriter:         txWriteRepo,
		Withdrawals:      withdrawalWriteRepo,
		Externals:        externalReadRepo,
		ExternalWriter:   externalWriteRepo,
		Gateway:          gatewayClient,
		Verifier:         verifier,
		Registry:         registry,
		Cache:            walletCacheRepo,
		HotWalletAddress: cfg.hotWalletAddress,
	}
	if kafkaWriter != nil {
		deps.KafkaWriter = kafkaWriter
	}
	walletService := services.NewWalletService(deps)

	// Confirmation worker reconciles pending on-chain withdrawals
	worker := workers.NewConfirmationWorker(
		txReadRepo,
		txWriteRepo,
		chainClient,
		kafkaEventWriter(kafkaWriter),
		workers.ConfirmationConfig{
			PollInterval:   cfg.workerPollInterval,
			PendingTimeout: cfg.workerPendingTimeout,
			BatchSize:      cfg.workerBatchSize,
		},
	)

	// Initialize handlers
	getWalletHandler := handlers.NewGetWalletHandler(walletService, jwtService)
	depositHandler := handlers.NewDepositHandler(walletService, jwtService)
	withdrawHandler := handlers.NewWithdrawHandler(walletService, jwtService)
	transactionsHandler := handlers.NewGetTransactionsHandler(walletService, jwtService)
	linkHandler := handlers.NewLinkExternalWalletHandler(walletService, jwtService)
	listExternalHandler := handlers.NewGetExternalWalletsHandler(walletService, jwtService)
	setPrimaryHandler := handlers.NewSetPrimaryExternalWalletHandler(walletService, jwtService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(protected chi.Router) {
			protected.Use(middlewares.AuthMiddleware(jwtService))
			protected.Use(middlewares.TxMiddleware(db))

			handlers.RegisterWalletHandler(protected, getWalletHandler)
			handlers.RegisterDepositHandler(protected, depositHandler)
			handlers.RegisterWithdrawHandler(protected, withdrawHandler)
			handlers.RegisterTransactionsHandler(protected, transactionsHandler)
			handlers.RegisterExternalWalletHandlers(protected, linkHandler, listExternalHandler, setPrimaryHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	go worker.Run(workerCtx)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// kafkaEventWriter keeps a typed nil out of the worker's EventWriter
// interface value.
func kafkaEventWriter(w *kafka.Writer) workers.EventWriter {
	if w == nil {
		return nil
	}
	return w
}
