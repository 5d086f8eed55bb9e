// Command ersupload serves the ERS return upload pages and the company
// details page.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ers-returns/fileupload/handler"
	"github.com/ers-returns/fileupload/locales"
	"github.com/ers-returns/fileupload/modules"
	"github.com/ers-returns/fileupload/modules/company"
	"github.com/ers-returns/fileupload/modules/upload"
	"github.com/ers-returns/fileupload/pkg/clientip"
	"github.com/ers-returns/fileupload/pkg/config"
	"github.com/ers-returns/fileupload/pkg/cookie"
	"github.com/ers-returns/fileupload/pkg/declared"
	"github.com/ers-returns/fileupload/pkg/fileselect"
	"github.com/ers-returns/fileupload/pkg/httpserver"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/pkg/logger"
	"github.com/ers-returns/fileupload/pkg/mongo"
	"github.com/ers-returns/fileupload/pkg/redis"
	"github.com/ers-returns/fileupload/pkg/requestid"
	"github.com/ers-returns/fileupload/views"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("ersupload stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    appConfig
		serverCfg httpserver.Config
		limits    fileselect.Config
		storeCfg  declared.Config
		cookieCfg cookie.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&serverCfg),
		config.Load(&limits),
		config.Load(&storeCfg),
		config.Load(&cookieCfg),
	); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, appCfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if appCfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(appCfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(appCfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	if err := appCfg.checkTranslations(tr.Languages()); err != nil {
		return err
	}

	store, checks, closeStore, err := openStore(ctx, storeCfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return fmt.Errorf("cookie manager: %w", err)
	}

	validator, err := fileselect.NewValidator(tr, fileselect.WithLogger(log))
	if err != nil {
		return fmt.Errorf("file validator: %w", err)
	}

	translate := func(ctx context.Context, key string) string { return tr.Tc(ctx, key) }
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage(i18n.GetLocale, translate),
		ErrorToast: views.ErrorToast,
		Translate:  translate,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(i18n.Middleware(i18n.NewLangExtractor(appCfg.languages())))

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, 5*time.Second, checks...))

	r.Mount("/", modules.Router(modules.RouterOptions{
		CSV:     upload.NewCSVService(limits, store, upload.NewSessions(cookies), validator, tr, errorHandler),
		ODS:     upload.NewODSService(limits, validator, tr, errorHandler),
		Company: company.NewService(tr, errorHandler),
	}))

	server := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	return server.Run(ctx, r)
}

// openStore connects the declared-files store selected by cfg.Backend.
func openStore(ctx context.Context, cfg declared.Config, log *slog.Logger) (declared.Store, []httpserver.Check, func(), error) {
	log = log.With(logger.Component("declared_store"), slog.String("backend", cfg.Backend))

	switch cfg.Backend {
	case declared.BackendRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, nil, fmt.Errorf("load redis config: %w", err)
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("declared store ready")
		closer := func() {
			if err := client.Close(); err != nil {
				log.Error("close redis", logger.Error(err))
			}
		}
		checks := []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}}
		return declared.NewRedis(client, redisCfg.KeyPrefix, cfg.TTL), checks, closer, nil

	case declared.BackendMongo:
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return nil, nil, nil, fmt.Errorf("load mongo config: %w", err)
		}
		db, err := mongo.NewWithDatabase(ctx, mongoCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		store := declared.NewMongo(db, cfg.TTL)
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("declared store indexes: %w", err)
		}
		log.Info("declared store ready")
		closer := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Client().Disconnect(ctx); err != nil {
				log.Error("close mongo", logger.Error(err))
			}
		}
		checks := []httpserver.Check{{Name: "mongo", Fn: mongo.Healthcheck(db.Client())}}
		return store, checks, closer, nil
	}

	log.Warn("declarations are kept in memory and lost on restart")
	return declared.NewMemory(cfg.TTL, declared.WithCapacity(cfg.MemoryCapacity)), nil, func() {}, nil
}
