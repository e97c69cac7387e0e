package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/catalog"
	config "github.com/DRSN-tech/storefront-seeder/internal/cfg"
	v1Grpc "github.com/DRSN-tech/storefront-seeder/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront-seeder/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront-seeder/internal/infrastructure/kafka"
	"github.com/DRSN-tech/storefront-seeder/internal/infrastructure/media"
	minioInfra "github.com/DRSN-tech/storefront-seeder/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/storefront-seeder/internal/repository/minio"
	"github.com/DRSN-tech/storefront-seeder/internal/repository/pgdb"
	"github.com/DRSN-tech/storefront-seeder/internal/repository/redis"
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/clients"
	"github.com/DRSN-tech/storefront-seeder/pkg/closer"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/DRSN-tech/storefront-seeder/pkg/postgres"
	"github.com/DRSN-tech/storefront-seeder/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout       = 10 * time.Second
	forcedCloseTimeout    = 2 * time.Second
	initTimeout           = 10 * time.Second
	kafkaTopicTimeout     = 10 * time.Second
	healthCheckInterval   = 15 * time.Second
	dependencyPingTimeout = 3 * time.Second
)

// App связывает конфигурацию, хранилища и use case'ы импортёра.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	db          *postgres.PgDatabase
	redisClient *clients.RedisClient
	objects     *minioInfra.MinioInfrastructure

	catalogUC   *usecase.CatalogUseCase
	bootstrapUC *usecase.BootstrapUseCase

	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewApp подключается к Postgres, Redis, MinIO и Kafka и собирает use case'ы.
// Ресурсы регистрируются в closer и освобождаются в обратном порядке в Close.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	a := &App{
		cfg:            cfg,
		logger:         log,
		closer:         closer.NewCloser(forcedCloseTimeout),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	// Фоновые задачи останавливаются последними, после серверов и ожидания очистки MinIO
	a.closer.Add("background tasks", func(context.Context) error {
		shutdownCancel()
		return nil
	})

	if err := a.init(); err != nil {
		_ = a.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	db, err := initPGDB(a.logger, a.cfg)
	if err != nil {
		return err
	}
	a.db = db
	a.closer.Add("postgres", func(context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})
	a.redisClient = redisClient

	redisCtx, redisCancel := context.WithTimeout(context.Background(), initTimeout)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return err
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), initTimeout)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}

	publisher, err := a.initPublisher()
	if err != nil {
		return err
	}

	txRunner := tr.NewRunner(db.Pool)

	productRepo := pgdb.NewProductRepo(db.Pool, txRunner)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool)
	mediaRepo := pgdb.NewMediaRepo(db.Pool)
	settingsRepo := pgdb.NewSettingsRepo(db.Pool)
	shippingRepo := pgdb.NewShippingRepo(db.Pool)
	runRepo := redis.NewRunRepo(redisClient, a.logger)
	objectRepo := s3Repo.NewObjectRepo(minioClient, a.cfg.Minio)

	a.objects = minioInfra.NewMinioInfrastructure(objectRepo, a.logger, a.shutdownCtx)
	a.closer.Add("minio cleanup", a.objects.WaitForCleanup)

	mediaStore := media.NewStore(a.objects, mediaRepo, a.cfg.Media, a.cfg.Minio.BucketName, a.logger)

	a.catalogUC = usecase.NewCatalogUC(
		productRepo,
		usecase.NewCategoryResolver(categoryRepo, a.logger),
		usecase.NewAssetFetcher(mediaStore, a.logger),
		runRepo,
		publisher,
		a.cfg.Import,
		a.cfg.Store,
		a.logger,
	)
	a.bootstrapUC = usecase.NewBootstrapUC(settingsRepo, shippingRepo, txRunner, a.logger)

	return nil
}

// initPublisher возвращает Kafka-продюсер или заглушку, если брокеры не заданы.
func (a *App) initPublisher() (usecase.EventPublisher, error) {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("KAFKA_BROKERS is empty, catalog events are disabled")
		return kafka.NewNoopPublisher(a.logger), nil
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(kafkaTopicTimeout); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic %s", a.cfg.Kafka.Topic)
		return nil, err
	}

	return producer, nil
}

// Run запускает HTTP и gRPC серверы и ждёт сигнала завершения.
func (a *App) Run() error {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Errorf(err, "shutdown finished with errors")
		}
	}()

	if a.cfg.Store.BootstrapOnStart {
		if _, err := a.RunBootstrap(context.Background()); err != nil {
			a.logger.Errorf(err, "store bootstrap failed")
			return err
		}
	}

	grpcSrv := v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	a.closer.Add("grpc server", grpcSrv.Stop)
	go grpcSrv.WatchDependencies(a.shutdownCtx, healthCheckInterval, a.pingPostgres, a.pingRedis)

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(a.catalogUC, a.bootstrapUC)

	httpSrv := v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add("http server", httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	return appErr
}

// RunImport выполняет один импорт каталога. Пустой path — набор из конфигурации.
func (a *App) RunImport(ctx context.Context, path string) (*usecase.ImportCatalogRes, error) {
	if path == "" {
		path = a.cfg.Import.DatasetPath
	}

	dataset, err := catalog.LoadDataset(path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.catalogUC.ImportCatalog(ctx, usecase.NewImportCatalogReq(dataset))
}

// RunBootstrap выполняет настройку магазина.
func (a *App) RunBootstrap(ctx context.Context) (*usecase.BootstrapRes, error) {
	res, err := a.bootstrapUC.Bootstrap(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(res.Applied) > 0 {
		a.logger.Infof("store bootstrap applied steps: %v", res.Applied)
	}

	return res, nil
}

// Close освобождает ресурсы в порядке, обратном регистрации. Повторный вызов ничего не делает.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.closer.Close(ctx)
	if err == nil {
		a.logger.Infof("Application shutdown complete")
	}

	return err
}

func (a *App) pingPostgres(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()

	return a.db.Pool.Ping(ctx)
}

func (a *App) pingRedis(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()

	return a.redisClient.Ping(ctx)
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
