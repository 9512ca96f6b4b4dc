package main

import (
	"net/http"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "Server error")
}

// invalidAmountResponse echoes what the client sent so the frontend can see
// why the amount was refused.
func (app *application) invalidAmountResponse(w http.ResponseWriter, r *http.Request, err error, received any) {
	app.logger.Warnw("invalid amount", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":    "Invalid amount",
		"received": received,
	})
}

func (app *application) malformedVerificationResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("malformed verification request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusBadRequest, map[string]string{
		"status": "failed",
		"error":  err.Error(),
	})
}

func (app *application) verificationServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("verify error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeStatus(w, http.StatusInternalServerError, "failed")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}
