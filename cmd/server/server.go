package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	v1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/http/v1"
	"github.com/KirkDiggler/rpg-sheet/internal/notify"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/derivation"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
)

var (
	httpAddr     string
	redisAddr    string
	rulesBaseURL string
	logLevel     string
	logFormat    string
	disableSRD   bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long: `Start the rpg-sheet HTTP server. Settings come from RPG_SHEET_* environment
variables; flags given on the command line take precedence.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "addr", "", "HTTP listen address (RPG_SHEET_HTTP_ADDR)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (RPG_SHEET_REDIS_ADDR)")
	serverCmd.Flags().StringVar(&rulesBaseURL, "rules-url", "", "Rules service base URL (RPG_SHEET_RULES_BASE_URL)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (RPG_SHEET_LOG_LEVEL)")
	serverCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: json or text (RPG_SHEET_LOG_FORMAT)")
	serverCmd.Flags().BoolVar(&disableSRD, "no-srd", false, "Do not query the D&D 5e SRD for spell suggestions")
}

// loadConfig reads the environment and applies flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.HTTPAddr = httpAddr
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("rules-url") {
		cfg.RulesBaseURL = rulesBaseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if disableSRD {
		cfg.SRDEnabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) {
	level, _ := cfg.SlogLevel() // nolint:errcheck // validated in loadConfig
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, config.LogFormatText) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{UseTLS: cfg.RedisTLS})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // shutting down
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = redisclient.Ping(pingCtx, redisClient)
	cancelPing()
	if err != nil {
		return fmt.Errorf("redis unreachable at %s: %w", cfg.RedisAddr, err)
	}

	handler, publisher, reporter, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}
	defer func() {
		_ = publisher.Close() // nolint:errcheck // shutting down
	}()
	defer reporter.Wait()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := redisclient.Ping(r.Context(), redisClient); err != nil {
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	handler.Register(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr, "rules", cfg.RulesBaseURL, "srd", cfg.SRDEnabled)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown timeout exceeded, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires clients, repositories and orchestrators into the API
func buildHandler(cfg *config.Config, redisClient redisclient.Client) (*v1.Handler, *notify.Publisher, *rules.Reporter, error) {
	clk := clock.New()

	rulesClient, err := rules.New(&rules.Config{
		BaseURL: cfg.RulesBaseURL,
		Timeout: cfg.RulesTimeout,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create rules client: %w", err)
	}
	reporter := rules.NewReporter(rulesClient)

	var srd external.Client
	if cfg.SRDEnabled {
		srd, err = external.New(&external.Config{
			BaseURL:  cfg.SRDBaseURL,
			CacheTTL: cfg.SRDCacheTTL,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create SRD client: %w", err)
		}
	}

	publisher, err := notify.New(&notify.Config{
		Bus:        events.NewBus(),
		Clock:      clk,
		MaxPending: cfg.MaxNotices,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	sessionRepo, err := session.NewRedisRepository(&session.Config{
		Client:      redisClient,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("sheet"),
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	rollRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: rollRepo,
		TTL:             cfg.RollTTL,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create dice service: %w", err)
	}

	suggestService, err := suggest.NewOrchestrator(&suggest.Config{
		Rules:    rulesClient,
		SRD:      srd,
		Reporter: reporter,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create suggestion service: %w", err)
	}

	derivationService, err := derivation.NewOrchestrator(&derivation.Config{
		Rules:    rulesClient,
		Notifier: publisher,
		Reporter: reporter,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create derivation service: %w", err)
	}

	sheetService, err := sheet.New(&sheet.Config{
		SessionRepo: sessionRepo,
		Rules:       rulesClient,
		Derivation:  derivationService,
		Suggest:     suggestService,
		Dice:        diceService,
		Notifier:    publisher,
		Inbox:       publisher,
		Reporter:    reporter,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create sheet service: %w", err)
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		SheetService: sheetService,
		SpellData:    srd,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create handler: %w", err)
	}

	return handler, publisher, reporter, nil
}
