// Package handlers defines the boundary translation from service-level error
// conditions to HTTP responses.
//
// The taxonomy deliberately separates "malformed input" (400) from
// "well-formed but absent" (404) from "well-formed but violates a
// relationship" (404 with a distinct message), so callers can distinguish
// "retry with different input" from "this resource will never exist" from
// "the parent resource you referenced is gone".
//
// All user-facing message text lives in this file and nowhere else.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luke95G/Back-end-Project/internal/repo"
	"github.com/Luke95G/Back-end-Project/internal/services"
)

// Canonical user-facing messages, one per error condition.
const (
	MsgBadRequest       = "Bad request."
	MsgPageNotFound     = "Page not found."
	MsgNotFound         = "Not found."
	MsgCategoryNotFound = "Category not found."
	MsgPathNotFound     = "Path not found."
	MsgInternal         = "Internal server error."
)

// translate maps a classified service/repo error to its HTTP status and fixed
// message. Unclassified errors become an opaque 500; no store detail leaks.
func translate(err error) (int, string) {
	switch {
	case errors.Is(err, repo.ErrInvalidSortColumn),
		errors.Is(err, repo.ErrInvalidSortOrder),
		errors.Is(err, services.ErrMissingCommentFields),
		errors.Is(err, services.ErrMissingVoteDelta):
		return http.StatusBadRequest, MsgBadRequest

	case errors.Is(err, services.ErrReviewNotFound):
		return http.StatusNotFound, MsgPageNotFound

	case errors.Is(err, services.ErrVoteTargetNotFound):
		return http.StatusNotFound, MsgNotFound

	case errors.Is(err, services.ErrCategoryNotFound):
		return http.StatusNotFound, MsgCategoryNotFound

	case errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrParentReviewNotFound):
		return http.StatusNotFound, MsgPathNotFound

	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// failFrom classifies err and writes the corresponding error response.
func failFrom(c *gin.Context, err error) {
	status, msg := translate(err)
	fail(c, status, msg)
}
