package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fundvault.backend/internal/config"
	"fundvault.backend/internal/infrastructure/blockchain"
	"fundvault.backend/internal/infrastructure/jobs"
	"fundvault.backend/internal/infrastructure/models"
	"fundvault.backend/internal/infrastructure/repositories"
	domainRepos "fundvault.backend/internal/domain/repositories"
	"fundvault.backend/internal/interfaces/http/handlers"
	"fundvault.backend/internal/interfaces/http/middleware"
	"fundvault.backend/internal/usecases"
	"fundvault.backend/pkg/jwt"
	"fundvault.backend/pkg/logger"
	"fundvault.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(
			&models.User{},
			&models.Project{},
			&models.Milestone{},
			&models.Backing{},
			&models.Reviewer{},
			&models.Vote{},
			&models.Payout{},
		); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	milestoneRepo := repositories.NewMilestoneRepository(db)
	backingRepo := repositories.NewBackingRepository(db)
	reviewerRepo := repositories.NewReviewerRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	payoutRepo := repositories.NewPayoutRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize the escrow ledger and height clock
	ledger, clock, err := buildLedger(cfg.Chain)
	if err != nil {
		return fmt.Errorf("failed to initialize escrow ledger: %w", err)
	}
	logger.Info(context.Background(), "Escrow ledger initialized", zap.String("backend", cfg.Chain.LedgerBackend))

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, milestoneRepo, reviewerRepo, uow, clock)
	fundingUsecase := usecases.NewFundingUsecase(projectRepo, milestoneRepo, backingRepo, ledger, uow, clock)
	verificationUsecase := usecases.NewVerificationUsecase(projectRepo, milestoneRepo, backingRepo, reviewerRepo, voteRepo, uow, clock)
	releaseUsecase := usecases.NewReleaseUsecase(projectRepo, milestoneRepo, payoutRepo, ledger, uow, cfg.Chain.TreasuryAddress)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	fundingHandler := handlers.NewFundingHandler(fundingUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase, releaseUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewMilestoneFailureSweep(verificationUsecase)
	go sweepJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		projectHandler:      projectHandler,
		fundingHandler:      fundingHandler,
		verificationHandler: verificationHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sweepJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 FundVault Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// buildLedger selects the settlement backend. "book" keeps balances in
// process for local development; "evm" talks to the escrow contract.
func buildLedger(cfg config.ChainConfig) (domainRepos.EscrowLedger, domainRepos.HeightClock, error) {
	switch cfg.LedgerBackend {
	case "book", "":
		// Seed every dev account with a comfortable balance and tick one
		// height unit per second.
		return blockchain.NewFaucetLedger(1_000_000_000), blockchain.NewTickingClock(time.Second), nil
	case "evm":
		ledger, err := blockchain.NewEvmEscrowLedger(cfg.RPCURL, cfg.EscrowContract, cfg.OperatorKey)
		if err != nil {
			return nil, nil, err
		}
		return ledger, ledger, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}
