// Package services defines the business logic for reviews, comments,
// categories, and users. This file centralizes the closed set of
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages and HTTP status codes is performed in exactly one
// place, the handler layer's translator.
package services

import "errors"

// Validation errors (the request can be retried with different input).
var (
	// ErrMissingCommentFields is returned when a new comment lacks the
	// author username or the body text.
	ErrMissingCommentFields = errors.New("comment requires username and body")

	// ErrMissingVoteDelta is returned when a vote patch carries no usable
	// inc_votes value.
	ErrMissingVoteDelta = errors.New("inc_votes is required")
)

// Not-found errors (well-formed input that matches nothing).
var (
	// ErrReviewNotFound indicates a review lookup (by id) matched no row.
	ErrReviewNotFound = errors.New("review not found")

	// ErrVoteTargetNotFound indicates a vote patch targeted a review id
	// that matches no row. Kept distinct from ErrReviewNotFound because the
	// two conditions carry different user-facing messages.
	ErrVoteTargetNotFound = errors.New("review to update not found")

	// ErrCategoryNotFound indicates a listing was filtered by a category
	// slug that is not in the categories table.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCommentNotFound indicates a comment deletion matched no row.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrParentReviewNotFound indicates a comment insert was rejected by the
	// store because the referenced review (or author) does not exist.
	ErrParentReviewNotFound = errors.New("parent review not found")
)
