package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nexus-exporter/internal/exporters"
	internalhttp "nexus-exporter/internal/http"
	"nexus-exporter/internal/shared/configs"
	"nexus-exporter/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "nexus-exporter").
		Logger()

	// Initialize the aggregation engine
	collector := exporters.NewCollector(config.Logs.Dir)
	flagLoader := exporters.NewFileFlagLoader(config.Flags.File)
	exportService := exporters.NewExportService(collector, flagLoader)
	shellRunner := exporters.NewShellRunner(config.Shell.ScriptPath, time.Duration(config.Shell.TimeoutSeconds)*time.Second)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(exportService, shellRunner, config.Export.DefaultWindow, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting nexus-exporter service on port %d (log_level=%s, logs_dir=%s, default_window=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Logs.Dir,
			app.config.Export.DefaultWindow)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
