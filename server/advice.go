package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"time"

	"itemstore/types"

	"go.uber.org/zap"
)

// errorPath is the literal stamped into every error envelope. The service
// has always reported this fixed value instead of the request path and
// clients match on it, so it stays.
const errorPath = "/api/error"

// handlerFunc is an HTTP handler that reports failures as returned errors
// instead of rendering them itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// advice wraps a handler with the global failure-rendering boundary. Each
// failure variant maps to exactly one (status, label, message) triple; any
// other returned error renders as a generic bad request carrying its own
// message. Panics that are not runtime errors continue to net/http.
func advice(logger *zap.Logger, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if _, ok := rec.(runtime.Error); !ok {
				panic(rec)
			}
			logger.Error("handler panicked", zap.Any("panic", rec), zap.String("url", r.URL.Path))
			writeErrorResponse(w, types.ErrorResponse{
				Status:  http.StatusInternalServerError,
				Error:   "Internal Server Error",
				Message: "A null pointer exception occurred.",
			})
		}()

		err := h(w, r)
		if err == nil {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			logger.Warn("request validation failed", zap.String("url", r.URL.Path))
			writeErrorResponse(w, types.ErrorResponse{
				Status:  http.StatusBadRequest,
				Error:   "Validation Error",
				Message: "Validation failed for one or more arguments.",
				Errors:  ve.Fields,
			})
			return
		}

		var ie *InvalidArgumentError
		if errors.As(err, &ie) {
			logger.Warn("invalid request argument", zap.String("url", r.URL.Path), zap.String("reason", ie.Message))
			writeErrorResponse(w, types.ErrorResponse{
				Status:  http.StatusBadRequest,
				Error:   "Bad Request",
				Message: ie.Message,
			})
			return
		}

		logger.Warn("request failed", zap.Error(err), zap.String("url", r.URL.Path))
		writeErrorResponse(w, types.ErrorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Bad Request",
			Message: err.Error(),
		})
	}
}

func writeErrorResponse(w http.ResponseWriter, resp types.ErrorResponse) {
	resp.Timestamp = time.Now().Unix()
	resp.Path = errorPath
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}

// cors permits cross-origin requests from any origin and answers preflight
// requests directly.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
