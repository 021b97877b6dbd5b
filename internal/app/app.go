package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/products-api/internal/cfg"
	v1Http "github.com/DRSN-tech/products-api/internal/delivery/v1/http"
	"github.com/DRSN-tech/products-api/internal/infrastructure/embedding"
	qdrantRepo "github.com/DRSN-tech/products-api/internal/repository/qdrant"
	"github.com/DRSN-tech/products-api/internal/usecase"
	"github.com/DRSN-tech/products-api/pkg/clients"
	"github.com/DRSN-tech/products-api/pkg/closer"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App — composition root приложения. Все зависимости собираются здесь
// один раз и передаются обработчикам уже инициализированными: к моменту
// запуска HTTP-сервера коллекция хранилища гарантированно существует,
// поэтому ленивых синглтонов и проверок "not initialized" в рантайме нет.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

// NewApp собирает приложение: конфиг уже загружен, здесь создаются клиенты,
// однократно инициализируется коллекция и связываются слои.
// Любая ошибка инициализации фатальна — частичного старта не бывает.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser()

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		log.Errorf(err, "failed to initialize qdrant client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return qdrantClient.Client.Close()
	})

	// Однократное создание коллекции до запуска обработчиков.
	initCtx, initCancel := context.WithTimeout(context.Background(), initTimeout)
	defer initCancel()
	if err := clients.EnsureCollection(initCtx, qdrantClient); err != nil {
		log.Errorf(err, "failed to initialize qdrant collection")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productRepo := qdrantRepo.NewProductRepo(qdrantClient.Client, cfg.Qdrant)
	embeddingService := embedding.NewEmbeddingService(cfg.Embedding, log)
	productUC := usecase.NewProductUC(productRepo, embeddingService, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера, после чего закрывает ресурсы (LIFO).
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
