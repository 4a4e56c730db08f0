// Package server exposes workout summaries over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/fitness-tracker/internal/config"
	"github.com/and161185/fitness-tracker/internal/observability"
	"github.com/and161185/fitness-tracker/internal/server/middleware"
	"github.com/and161185/fitness-tracker/internal/training"
	"github.com/and161185/fitness-tracker/model"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

var ErrNonFinite = errors.New("result is not a finite number")

type Server struct {
	Config *config.ServerConfig
}

func NewServer(config *config.ServerConfig) *Server {
	return &Server{Config: config}
}

// Router builds the HTTP routes with their middleware.
func (srv *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.Config.Logger))

	// promhttp compresses on its own.
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.DecompressMiddleware)
		r.Use(middleware.CompressMiddleware)
		r.Post("/training", srv.TrainingHandlerJSON)
		r.Post("/training/{type}", srv.TrainingHandler)
		r.Get("/ping", srv.PingHandler)
	})

	return router
}

// Run serves HTTP until ctx is cancelled, then shuts the server down.
func (srv *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              srv.Config.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	srv.Config.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// TrainingHandler summarizes a workout whose values come as a plain-text
// list of numbers separated by spaces or commas.
func (srv *Server) TrainingHandler(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	data, err := parseValues(string(body))
	if err != nil {
		srv.Config.Logger.Infof("failed to parse values [type=%s]: %v", typ, err)
		observability.RecordFailure("bad_request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	info, err := summarize(typ, data)
	if err != nil {
		srv.writeTrainingError(w, typ, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintln(w, info.GetMessage()); err != nil {
		srv.Config.Logger.Errorf("failed to write response body [type=%s]: %v", typ, err)
	}
}

// TrainingHandlerJSON summarizes a workout sent as a JSON packet.
func (srv *Server) TrainingHandlerJSON(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		observability.RecordFailure("unsupported_media_type")
		http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
		return
	}

	var packet model.Packet
	if err := json.NewDecoder(r.Body).Decode(&packet); err != nil {
		observability.RecordFailure("bad_request")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	info, err := summarize(string(packet.Type), packet.Data)
	if err != nil {
		srv.writeTrainingError(w, string(packet.Type), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		srv.Config.Logger.Errorf("failed to write response JSON: %v", err)
	}
}

func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "pong")
}

func (srv *Server) writeTrainingError(w http.ResponseWriter, typ string, err error) {
	srv.Config.Logger.Infof("failed to summarize training [type=%s]: %v", typ, err)

	switch {
	case errors.Is(err, training.ErrUnknownWorkoutType):
		observability.RecordFailure("unknown_type")
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, training.ErrInvalidDataLength):
		observability.RecordFailure("invalid_length")
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, training.ErrInvalidValue):
		observability.RecordFailure("invalid_value")
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNonFinite):
		observability.RecordFailure("non_finite")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func summarize(typ string, data []float64) (model.InfoMessage, error) {
	tr, err := training.ReadPackage(typ, data)
	if err != nil {
		return model.InfoMessage{}, err
	}

	info := training.ShowTrainingInfo(tr)
	for _, v := range []float64{info.Duration, info.Distance, info.Speed, info.Calories} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.InfoMessage{}, ErrNonFinite
		}
	}

	observability.RecordSummary(info)
	return info, nil
}

func parseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
