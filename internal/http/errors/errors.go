// Package errors carries request-scoped logging helpers so handler failures
// land in the log with their chi request id attached.
package errors

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// InternalError logs the real failure and answers with a generic 500 so
// internals never leak to the client.
func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logf(r, "[ERROR]", "%s: %v", message, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// BadRequestError logs the rejected input and answers 400 with the given
// client-safe message.
func BadRequestError(w http.ResponseWriter, r *http.Request, err error, clientMessage string) {
	logf(r, "[WARN]", "bad request: %v", err)
	http.Error(w, clientMessage, http.StatusBadRequest)
}

// LogError records a failure that does not change the response.
func LogError(r *http.Request, message string, err error) {
	logf(r, "[ERROR]", "%s: %v", message, err)
}

func LogInfo(r *http.Request, message string) {
	logf(r, "[INFO]", "%s", message)
}

func logf(r *http.Request, level, format string, args ...any) {
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		log.Printf(level+" RequestID="+reqID+": "+format, args...)
		return
	}
	log.Printf(level+" "+format, args...)
}
