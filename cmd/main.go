package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/commands"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/events"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/facades"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/handlers"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/jwt"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/middlewares"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/repositories"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/services"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/workers"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Fixed maintenance intervals.
const (
	dmDrainInterval        = 5 * time.Second
	checkpointInterval     = 5 * time.Minute
	pruneInterval          = 24 * time.Hour
	ipCleanupInterval      = time.Hour
	sessionCleanupInterval = time.Hour
	reminderInterval       = time.Minute
	shutdownTimeout        = 10 * time.Second
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	grpcPort string

	dbDriver       string
	dbDSN          string
	dbMaxOpenConns int
	dbMaxIdleConns int

	redisAddr       string
	redisPassword   string
	redisDB         int
	sessionCacheTTL time.Duration

	eventsProvider string
	kafkaBrokers   []string
	kafkaTopic     string
	natsURL        string
	natsSubject    string

	jwtSecret  string
	sessionTTL time.Duration

	claimReward   int64
	claimCooldown time.Duration

	billSweepInterval time.Duration
	txRetention       time.Duration

	loginMaxAttempts int64
	loginWindow      time.Duration

	discordToken string
}

// @title DC Coin API
// @version 1.0.0
// @description Coin ledger behind the Discord bot: transfers, claims, bills, backups and cards
// @host localhost:8080
// @BasePath /api
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

// parseConfig loads environment variables from a file and returns the
// application, store, cache, events, session, ledger and Discord settings.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// Store config
	cfg.dbDriver = getEnv("DB_DRIVER", repositories.DriverSQLite)
	cfg.dbDSN = getEnv("DB_DSN", "file:coin.db?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate&_foreign_keys=on")
	if cfg.dbMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", "8"); err != nil {
		return
	}
	if cfg.dbMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", "4"); err != nil {
		return
	}

	// Redis config
	cfg.redisAddr = getEnv("REDIS_ADDR", "")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.sessionCacheTTL, err = getSeconds("SESSION_CACHE_TTL_SECOND", "60"); err != nil {
		return
	}

	// Events config
	cfg.eventsProvider = strings.ToLower(getEnv("EVENTS_PROVIDER", "none"))
	cfg.kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "ledger.transactions")
	cfg.natsURL = getEnv("NATS_URL", "nats://localhost:4222")
	cfg.natsSubject = getEnv("NATS_SUBJECT", "ledger.transactions")
	switch cfg.eventsProvider {
	case "none", "kafka", "nats":
	default:
		err = fmt.Errorf("EVENTS_PROVIDER: unknown provider %q", cfg.eventsProvider)
		return
	}

	// Session config
	cfg.jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.sessionTTL, err = getSeconds("SESSION_TTL_SECOND", "86400"); err != nil {
		return
	}

	// Ledger config
	if cfg.claimReward, err = units.ParseAmount(getEnv("CLAIM_REWARD", "0.00138889")); err != nil {
		err = fmt.Errorf("CLAIM_REWARD: %w", err)
		return
	}
	if cfg.claimCooldown, err = getSeconds("CLAIM_COOLDOWN_SECOND", "3600"); err != nil {
		return
	}
	if cfg.billSweepInterval, err = getSeconds("BILL_SWEEP_INTERVAL_SECOND", "600"); err != nil {
		return
	}
	retentionDays, err := getInt("TX_RETENTION_DAYS", "0")
	if err != nil {
		return
	}
	cfg.txRetention = time.Duration(retentionDays) * 24 * time.Hour

	// Login throttle config
	maxAttempts, err := getInt("LOGIN_MAX_ATTEMPTS", "10")
	if err != nil {
		return
	}
	cfg.loginMaxAttempts = int64(maxAttempts)
	if cfg.loginWindow, err = getSeconds("LOGIN_WINDOW_SECOND", "600"); err != nil {
		return
	}

	// Discord config
	cfg.discordToken = getEnv("DISCORD_TOKEN", "")

	return
}

// app is the wired process without its listeners.
type app struct {
	db         *sqlx.DB
	router     http.Handler
	scheduler  *workers.Scheduler
	dms        *workers.DMDispatcher
	discord    *facades.DiscordFacade
	dispatcher *commands.Dispatcher
	closers    []func() error
}

// Close releases every resource opened by newApp in reverse order.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Log.Errorw("failed to close resource", "error", err)
		}
	}
}

// newApp opens the store, the optional cache and event bus, and wires the
// protocols into the HTTP router, the chat dispatcher and the scheduler.
func newApp(ctx context.Context, cfg config, sender workers.DMSender) (*app, error) {
	a := &app{}

	// Store
	db, err := repositories.Open(ctx, cfg.dbDriver, cfg.dbDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.dbMaxOpenConns)
	db.SetMaxIdleConns(cfg.dbMaxIdleConns)
	a.db = db
	a.closers = append(a.closers, db.Close)

	// Session cache
	var cache services.SessionCache
	if cfg.redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.redisAddr,
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			a.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		cache = repositories.NewSessionCacheRepository(rdb, cfg.sessionCacheTTL)
	}

	// Ledger events
	var publisher services.EventPublisher
	switch cfg.eventsProvider {
	case "kafka":
		p := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.kafkaBrokers, cfg.kafkaTopic))
		a.closers = append(a.closers, p.Close)
		publisher = p
	case "nats":
		conn, err := events.ConnectNATS(cfg.natsURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("nats connection error: %w", err)
		}
		p := events.NewNATSPublisher(conn, cfg.natsSubject)
		a.closers = append(a.closers, p.Close)
		publisher = p
	}

	// Repositories
	tx := repositories.NewTxManager(db)
	users := repositories.NewUserRepository(db)
	txs := repositories.NewTransactionRepository(db)
	bills := repositories.NewBillRepository(db)
	backups := repositories.NewBackupRepository(db)
	cards := repositories.NewCardRepository(db)
	sessions := repositories.NewSessionRepository(db)
	dmQueue := repositories.NewDMQueueRepository(db)
	ips := repositories.NewIPRepository(db)
	maintenance := repositories.NewMaintenanceRepository(db)

	// DM queue
	a.dms = workers.NewDMDispatcher(dmQueue, sender)
	notifier := services.NewDMNotifier(dmQueue, a.dms.Trigger)

	// Services
	txIDs := services.NewIDGenerator(txs, bills)
	opts := []services.Option{
		services.WithPublisher(publisher),
		services.WithNotifier(notifier),
	}
	ledger := services.NewLedgerService(tx, users, txs, txIDs, cfg.claimReward, cfg.claimCooldown, opts...)
	billSvc := services.NewBillService(tx, bills, ledger, txIDs, opts...)
	backupSvc := services.NewBackupService(tx, backups, users, txs, services.NewCodeGenerator(backups), txIDs, opts...)
	cardSvc := services.NewCardService(tx, cards, ledger, services.NewCodeGenerator(cards))
	tokens := jwt.New(jwt.WithSecretKey(cfg.jwtSecret))
	authSvc := services.NewAuthService(users, sessions, cache, tokens, ledger, cfg.sessionTTL, opts...)

	a.dispatcher = commands.NewDispatcher(ledger, billSvc, backupSvc, cardSvc, nil)

	// Background tasks
	a.scheduler = workers.NewScheduler(
		workers.BillSweepTask(billSvc, cfg.billSweepInterval),
		workers.PruneTask(txs, cfg.txRetention, pruneInterval, time.Now),
		workers.IPCleanupTask(ips, cfg.loginWindow, ipCleanupInterval, time.Now),
		workers.SessionCleanupTask(sessions, sessionCleanupInterval, time.Now),
		workers.ClaimReminderTask(users, notifier, cfg.claimCooldown, reminderInterval, time.Now),
		workers.DMDrainTask(a.dms, dmDrainInterval),
	)
	if cfg.dbDriver == repositories.DriverSQLite {
		a.scheduler.Add(workers.CheckpointTask(maintenance, checkpointInterval))
	}

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Named("http")))

	r.Get("/health", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(middlewares.ThrottleMiddleware(ips, cfg.loginMaxAttempts, cfg.loginWindow, nil)).
			Post("/login", handlers.NewLoginHandler(authSvc))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, authSvc))

			r.Post("/logout", handlers.NewLogoutHandler(authSvc, tokens))
			r.Post("/transfer", handlers.NewTransferHandler(ledger))
			r.Post("/claim", handlers.NewClaimHandler(ledger))
			r.Post("/card", handlers.NewCardHandler(cardSvc))
			r.Post("/card/reset", handlers.NewCardResetHandler(cardSvc))
			r.Post("/backup/create", handlers.NewBackupCreateHandler(backupSvc))
			r.Post("/backup/list", handlers.NewBackupListHandler(backupSvc))
			r.Post("/backup/restore", handlers.NewBackupRestoreHandler(backupSvc))
			r.Post("/account/update", handlers.NewAccountUpdateHandler(authSvc))
			r.Post("/bill/list", handlers.NewBillListHandler(billSvc))
			r.Post("/bill/create", handlers.NewBillCreateHandler(billSvc, nil))
			r.Post("/bill/pay", handlers.NewBillPayHandler(billSvc))
			r.Get("/transactions", handlers.NewTransactionsHandler(ledger))
			r.Get("/user/{userId}/saldo", handlers.NewSaldoHandler(ledger))
		})
	})
	a.router = r

	return a, nil
}

// logSender stands in for Discord when no token is configured.
type logSender struct{}

func (logSender) SendDM(_ context.Context, userID string, msg models.DMMessage) error {
	logger.Log.Infow("dm not delivered, discord disabled", "user_id", userID, "title", msg.Title)
	return nil
}

// discordSender defers to the facade once the session is up.
type discordSender struct {
	facade *facades.DiscordFacade
}

func (s *discordSender) SendDM(ctx context.Context, userID string, msg models.DMMessage) error {
	if s.facade == nil {
		return errors.New("discord session not ready")
	}
	return s.facade.SendDM(ctx, userID, msg)
}

// run initializes the logger and the application, starts the HTTP and gRPC
// servers, the Discord session and the scheduler, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var sender workers.DMSender = logSender{}
	discord := &discordSender{}
	if cfg.discordToken != "" {
		sender = discord
	}

	a, err := newApp(ctxShutdown, cfg, sender)
	if err != nil {
		return err
	}
	defer a.Close()

	// Discord
	if cfg.discordToken != "" {
		session, err := facades.NewDiscordSession(cfg.discordToken)
		if err != nil {
			return fmt.Errorf("discord session: %w", err)
		}
		discord.facade = facades.NewDiscordFacade(session, a.dispatcher)
		session.AddHandler(discord.facade.OnMessageCreate)
		if err := session.Open(); err != nil {
			return fmt.Errorf("discord connection error: %w", err)
		}
		defer session.Close()
		logger.Log.Info("Discord session opened")
	}

	errChan := make(chan error, 2)

	// gRPC health server
	var grpcSrv *grpc.Server
	if cfg.grpcPort != "" {
		lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
		if err != nil {
			return fmt.Errorf("gRPC listen: %w", err)
		}
		grpcSrv = grpc.NewServer()
		hs := health.NewServer()
		hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(grpcSrv, hs)

		go func() {
			logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server failed: %w", err)
			}
		}()
	}

	// Background tasks
	go func() {
		if err := a.scheduler.Start(ctxShutdown); err != nil {
			logger.Log.Errorw("scheduler stopped", "error", err)
		}
	}()
	a.dms.Trigger()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: a.router,
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}
