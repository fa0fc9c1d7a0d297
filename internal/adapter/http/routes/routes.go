package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "reborn_api/docs" // This will be auto-generated
	"reborn_api/internal/adapter/http/handlers"
	"reborn_api/internal/adapter/http/middleware"
	"reborn_api/internal/adapter/persistence/repository"
	"reborn_api/internal/infrastructure/config"
	"reborn_api/internal/infrastructure/database"
	"reborn_api/internal/infrastructure/logger"
	"reborn_api/internal/infrastructure/metrics"
	"reborn_api/internal/infrastructure/rendering"
	"reborn_api/internal/infrastructure/scheduler"
	"reborn_api/internal/infrastructure/storage"
	"reborn_api/internal/usecase"
	"reborn_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type app struct {
	router  *gin.Engine
	sweeper *scheduler.StaleDocumentSweeper
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.ServiceName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.Server.GinMode)
	metrics.InitAPIMetrics()

	ctx := context.Background()
	a, err := getRoutes(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to startup the application", zap.Error(err))
	}
	a.sweeper.Start()
	defer a.sweeper.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (*app, error) {
	db, err := database.ConnectPostgres(cfg.Postgres.DSN(), cfg.Server.IsProduction())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, zlog, &repository.RebornModel{}, &repository.DocumentTemplateModel{}); err != nil {
		return nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	if cfg.DynamoDB.Endpoint != "" {
		created, err := database.EnsureDocumentsTable(ctx, ddb, cfg.DynamoDB.DocumentsTable)
		if err != nil {
			return nil, err
		}
		if created {
			zlog.Info("documents table created", zap.String("table", cfg.DynamoDB.DocumentsTable))
		}
	}

	rebornRepo := repository.NewRebornGormRepository(db)
	templateRepo := repository.NewDocumentTemplateGormRepository(db)
	documentRepo := repository.NewDocumentDynamoRepository(ddb, cfg.DynamoDB.DocumentsTable)

	if _, err := database.SeedTemplates(ctx, templateRepo, time.Now().UTC(), zlog); err != nil {
		return nil, err
	}

	var fileStorage interfaces.IFileStorage
	if cfg.MinIO.Enabled {
		minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		fileStorage = minioStorage
	} else {
		zlog.Warn("file storage disabled, generated documents will not be downloadable later")
	}

	loc, err := cfg.Rendering.Location()
	if err != nil {
		return nil, err
	}
	fonts, err := rendering.NewEmbeddedFontResolver(cfg.Rendering.FontDir)
	if err != nil {
		return nil, err
	}
	generator := rendering.NewCertificateGenerator(fonts, rendering.NewBaseImageLoader(cfg.Rendering.BaseImageTimeout), loc, zlog)

	rebornUseCase := usecase.NewRebornUseCase(rebornRepo, zlog)
	templateUseCase := usecase.NewTemplateUseCase(templateRepo)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, rebornRepo, fileStorage, zlog)
	certificateUseCase := usecase.NewBirthCertificateUseCase(rebornRepo, templateRepo, documentRepo, generator, fileStorage, zlog)

	rebornHandler := handlers.NewRebornHandler(rebornUseCase)
	documentHandler := handlers.NewDocumentHandler(certificateUseCase, templateUseCase, documentUseCase)

	router := gin.New()
	setMiddlewares(router, zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.AuthMiddleware([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer))
	addRebornRoutes(authed, rebornHandler, documentHandler)
	addDocumentRoutes(authed, documentHandler)

	sweeper := scheduler.NewStaleDocumentSweeper(documentUseCase, cfg.Sweeper.Interval, cfg.Sweeper.MaxProcessingAge, zlog)

	return &app{router: router, sweeper: sweeper}, nil
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger) {
	router.Use(middleware.RequestLogger(zlog))
	router.Use(middleware.GinMetricsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
