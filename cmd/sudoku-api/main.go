package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "github.com/Nasso-Kareh/Sudoku-App/internal/adapters/http"
	"github.com/Nasso-Kareh/Sudoku-App/internal/generator"
	"github.com/Nasso-Kareh/Sudoku-App/internal/hint"
	"github.com/Nasso-Kareh/Sudoku-App/internal/solver"
	"github.com/Nasso-Kareh/Sudoku-App/internal/usecase"
	"github.com/Nasso-Kareh/Sudoku-App/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	// Wire providers → use cases → HTTP adapter
	s := solver.NewBacktrackingSolver()
	g := generator.NewCarvingGenerator(s)
	v := validator.New()
	hin := hint.NewSolveHinter(s, rand.New(rand.NewSource(time.Now().UnixNano())))
	uc := usecase.NewService(s, g, v, hin)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
