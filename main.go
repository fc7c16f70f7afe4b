package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Hammerforce/internal/calc/batch"
	"Hammerforce/internal/calc/friction"
	"Hammerforce/internal/calc/geometry"
	"Hammerforce/internal/calc/importer"
	"Hammerforce/internal/calc/kinematics"
	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/calc/preview"
	"Hammerforce/internal/calc/report"
	"Hammerforce/internal/config"
	"Hammerforce/internal/ipc"
	"Hammerforce/internal/logging"
	"Hammerforce/internal/middleware"
	"Hammerforce/internal/units"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, logger *slog.Logger, access zerolog.Logger) error {
	pipelineOpts := []penetration.Option{penetration.WithClampedTip(cfg.Calc.ClampConeTip)}
	frictionOpts := []friction.Option{
		friction.WithCoefficient(cfg.Calc.DefaultFrictionCoefficient),
		friction.WithGeometry(geometry.ClampedTip(cfg.Calc.ClampConeTip)),
	}

	dispatcher, err := ipc.New(logger.With("component", "ipc"))
	if err != nil {
		return fmt.Errorf("ipc dispatcher: %w", err)
	}
	ipc.RegisterCalculator(dispatcher, pipelineOpts...)

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestID, middleware.AccessLog(access), limiter.LimitMiddleware)

	kinematicsH := &kinematics.Handler{}
	frictionH := &friction.Handler{Opts: frictionOpts}
	penetrationH := &penetration.Handler{Opts: pipelineOpts}
	formH := &units.Handler{Opts: pipelineOpts}
	previewH := &preview.Handler{}
	batchH := &batch.Handler{MaxItems: cfg.Batch.MaxItems, Opts: pipelineOpts}
	importH := &importer.Handler{MaxRows: cfg.Batch.MaxItems, Opts: pipelineOpts}
	reportH := &report.Handler{MaxItems: cfg.Batch.MaxItems, Opts: pipelineOpts}
	ipcH := &ipc.Handler{Dispatcher: dispatcher}

	api.HandleFunc("/tools/kinematics/calc", kinematicsH.Calc).Methods("POST")
	api.HandleFunc("/tools/friction/calc", frictionH.Calc).Methods("POST")
	api.HandleFunc("/tools/penetration/calc", penetrationH.Calc).Methods("POST")
	api.HandleFunc("/tools/penetration/form", formH.Form).Methods("POST")
	api.HandleFunc("/tools/penetration/preview", previewH.Calc).Methods("POST")
	api.HandleFunc("/tools/penetration/batch", batchH.Penetration).Methods("POST")
	api.HandleFunc("/tools/penetration/import", importH.Import).Methods("POST")
	api.HandleFunc("/tools/penetration/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/penetration/report/xlsx", reportH.Export).Methods("POST")
	api.HandleFunc("/ipc/{channel}", ipcH.Invoke).Methods("POST")

	return nil
}

func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// serve blocks until the server stops. It returns nil after a clean Shutdown.
func serve(server *http.Server, cfg config.ServerConfig) error {
	var err error
	if cfg.TLS() {
		err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
	} else {
		err = server.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func run(ctx context.Context) error {
	configDir := os.Getenv("HAMMERFORCE_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	logs := logging.NewSlogManager()
	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	var fileOut io.Writer
	if logFile != nil {
		defer logFile.Close()
		fileOut = logFile
	}
	logs.Setup(os.Stdout, fileOut, cfg.LogLevel)
	logger := logs.Logger()

	router := mux.NewRouter()
	if err := HandleList(router, cfg, logger, logs.AccessLogger(os.Stdout)); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: CORS(router),
	}

	logger.Info("Starting server", "addr", cfg.Server.Addr, "tls", cfg.Server.TLS())
	serveErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		serveErr <- serve(server, cfg.Server)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	wg.Wait()
	logger.Info("Server stopped")
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("hammerforce", "error", err)
		os.Exit(1)
	}
}
