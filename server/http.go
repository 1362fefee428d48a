package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"itemstore/pkg/config"
	"itemstore/store"
	"itemstore/types"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewMux constructs the HTTP handler with all routes
func NewMux(items *store.Store, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health Check Route
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// GET or POST /api/items
	mux.HandleFunc("/api/items", advice(logger, func(w http.ResponseWriter, r *http.Request) error {
		switch r.Method {
		case http.MethodGet:
			// Placeholder body kept from the original demo surface; it does
			// not read the store.
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("e"))
			return nil
		case http.MethodPost:
			var req types.CreateItemRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return &InvalidArgumentError{Message: "invalid request body"}
			}
			if fields := req.Validate(); len(fields) > 0 {
				return &ValidationError{Fields: fields}
			}
			if err := items.Create(*req.ID, *req.FirstName); err != nil {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte("Item already exists"))
				return nil
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("Item created successfully"))
			return nil
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte("method not allowed"))
			return nil
		}
	}))

	// GET, PUT or DELETE /api/items/{id}
	mux.HandleFunc("/api/items/", advice(logger, func(w http.ResponseWriter, r *http.Request) error {
		id, err := itemID(r.URL.Path)
		if err != nil {
			return err
		}
		switch r.Method {
		case http.MethodGet:
			value, err := items.Get(id)
			if err != nil {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("Item not found"))
				return nil
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(value))
			return nil
		case http.MethodPut:
			// The new value arrives as a query or form parameter.
			value := r.FormValue("value")
			if value == "" {
				return &InvalidArgumentError{Message: "required parameter 'value' is not present"}
			}
			if err := items.Update(id, value); err != nil {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("Item not found"))
				return nil
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Item updated successfully"))
			return nil
		case http.MethodDelete:
			if err := items.Delete(id); err != nil {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("Item not found"))
				return nil
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Item deleted successfully"))
			return nil
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte("method not allowed"))
			return nil
		}
	}))

	// GET /api/stats
	mux.HandleFunc("/api/stats", advice(logger, func(w http.ResponseWriter, r *http.Request) error {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte("method not allowed"))
			return nil
		}
		stats := items.Stats()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.StatsResponse{TotalItems: stats.TotalItems})
		return nil
	}))

	return cors(mux)
}

// itemID extracts the integer id from an /api/items/{id} path.
func itemID(path string) (int, error) {
	raw := strings.TrimPrefix(path, "/api/items/")
	if raw == "" {
		return 0, &InvalidArgumentError{Message: "missing item id"}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidArgumentError{Message: "invalid item id: " + raw}
	}
	return id, nil
}

// NewHTTPServer constructs the http.Server with the configured addr
func NewHTTPServer(handler http.Handler, cfg *config.Config) *http.Server {
	return &http.Server{Addr: cfg.Addr, Handler: handler}
}

// RegisterHooks starts and stops the server using fx Lifecycle
func RegisterHooks(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting in-memory item store", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping item store server")
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	})
}
