// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Every failure path funnels through fail(), which guarantees the uniform
// error envelope and centralizes logging of server-side errors.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{ "message": "Category not found." }
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "categories": [ ... ] }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luke95G/Back-end-Project/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// The shape is deliberately minimal: one human-readable message paired with
// the HTTP status. Clients branch on the status code; the message is fixed
// per condition and safe to display.
type ErrorResponse struct {
	// Human-readable message, fixed per error condition
	Message string `json:"message" example:"Page not found."`
}

// fail aborts the request with the uniform error envelope and logs
// server-side errors with the request-scoped logger.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Message: msg})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup for the NoRoute fallback) should call
// Fail to return consistent error envelopes without depending on unexported
// helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
