package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	folderrepo "github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/folder"
	"github.com/heartmarshall/thaivocab-backend/internal/adapter/provider/coarse"
	"github.com/heartmarshall/thaivocab-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/thaivocab-backend/internal/adapter/provider/gtranslate"
	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/pipeline"
	"github.com/heartmarshall/thaivocab-backend/internal/service/impex"
	"github.com/heartmarshall/thaivocab-backend/internal/service/quiz"
	"github.com/heartmarshall/thaivocab-backend/internal/service/vocab"
	"github.com/heartmarshall/thaivocab-backend/internal/transport/middleware"
	"github.com/heartmarshall/thaivocab-backend/internal/transport/rest"
)

// Run is the application entry point: it loads configuration, wires the
// translation pipeline, services, and HTTP transport, and serves until ctx
// is cancelled. Shutdown is graceful within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Providers: the fast gtx endpoint backs Stage 1, Gemini backs the
	// Stage-1 fallback plus Stages 2 and 3.
	fast := gtranslate.NewProvider(cfg.Provider.TranslateBaseURL, cfg.Provider.TranslateTimeout, logger)
	deep := gemini.NewClient(cfg.Provider, logger)
	coarseFetcher := coarse.NewFetcher(fast, deep, logger)

	events := rest.NewBroadcaster()
	orchestrator := pipeline.New(logger, coarseFetcher, deep, deep, cfg.Pipeline,
		pipeline.WithPublishHook(events.Publish))

	folders := folderrepo.New(pool)
	cards := flashcardrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	vocabSvc := vocab.NewService(logger, folders, cards, tx, cfg.Vocab)
	impexSvc := impex.NewService(logger, folders, cards, tx, cfg.Vocab)
	quizSvc := quiz.NewService(logger, folders, cards, cfg.Quiz)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Translate: rest.NewTranslateHandler(orchestrator, events, logger),
		Vocab:     rest.NewVocabHandler(vocabSvc, logger),
		Quiz:      rest.NewQuizHandler(quizSvc, logger),
		Impex:     rest.NewImpexHandler(impexSvc, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
