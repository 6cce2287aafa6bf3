// Entry point for the polbrief HTTP service: upload a brochure PDF, get the
// decorated policy report back.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/polbrief/joblog"
	"github.com/hazyhaar/polbrief/polpipe"
	"github.com/hazyhaar/polbrief/report"
)

func main() {
	cfgPath := env("POLBRIEF_CONFIG", "")
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg := DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = LoadConfig(cfgPath)
		if err != nil {
			slog.Error("config", "error", err)
			os.Exit(1)
		}
	}

	// Logging.
	var lvl slog.Level
	switch env("LOG_LEVEL", "info") {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Pipeline.
	pipe, err := polpipe.New(polpipe.Config{
		MaxDocumentSize:   cfg.MaxUploadBytes(),
		SectionTerminator: cfg.SectionTerminator,
		Logger:            logger,
	})
	if err != nil {
		slog.Error("pipeline", "error", err)
		os.Exit(1)
	}

	// Run log.
	runs, err := joblog.Open(cfg.DBPath)
	if err != nil {
		slog.Error("run log", "error", err)
		os.Exit(1)
	}
	defer runs.Close()

	// Router.
	r := chi.NewRouter()
	r.Use(securityHeaders)
	r.Use(maxBody(cfg.MaxUploadBytes()))
	r.Use(requestLogger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]any{
			"message": "Welcome to Insurance Brochure Processor API",
			"endpoints": map[string]string{
				"/process-brochure": "POST - Process an insurance brochure PDF",
				"/health":           "GET - Check API health",
				"/runs":             "GET - List recent processing runs",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "healthy"})
	})

	r.Post("/process-brochure", processHandler(pipe, runs))

	r.Get("/runs", func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 50)
		list, err := runs.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, 500, err)
			return
		}
		writeJSON(w, 200, list)
	})

	// HTTP server.
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

// processHandler accepts a multipart upload with a "file" field, runs the
// pipeline, records the run, and returns the decorated report.
func processHandler(pipe *polpipe.Pipeline, runs *joblog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, 400, err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, 400, errors.New("missing file field"))
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			writeError(w, 400, errors.New("File must be a PDF"))
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, 400, err)
			return
		}

		rec, err := pipe.Process(r.Context(), polpipe.RawDocument{
			Data:      data,
			MediaType: "application/pdf",
		})

		run := &joblog.Run{
			Filename:   header.Filename,
			SizeBytes:  int64(len(data)),
			DurationMs: time.Since(start).Milliseconds(),
		}
		if err != nil {
			run.Status = "error"
			run.Error = err.Error()
		} else {
			run.Status = "success"
		}
		runs.Record(r.Context(), run)

		if err != nil {
			var parseErr *polpipe.ParseError
			if errors.As(err, &parseErr) {
				writeError(w, 400, err)
				return
			}
			writeError(w, 500, err)
			return
		}

		writeJSON(w, 200, report.Build(rec))
	}
}

// --- Helpers ---

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
