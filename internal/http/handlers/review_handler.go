// Review HTTP handlers.
//
// This file exposes REST endpoints for review resources:
//   - GET   /api/reviews              (list, filterable and sortable)
//   - GET   /api/reviews/{review_id}  (single review with comment count)
//   - PATCH /api/reviews/{review_id}  (apply a vote delta)
//
// Handlers are transport-thin: they parse and shape-check inputs, call the
// application services, and translate classified errors through the boundary
// translator in errors.go.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

//
// Service contracts (context-aware)
//

// ReviewService defines review operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ReviewService interface {
	// List returns reviews sorted/filtered by the given parameters.
	List(ctx context.Context, sortBy, order, category string) ([]domain.Review, error)
	// Get returns one review with its live comment count.
	Get(ctx context.Context, id int) (*domain.Review, error)
	// UpdateVotes applies a signed delta to a review's votes atomically.
	UpdateVotes(ctx context.Context, id int, delta *int) (*domain.Review, error)
}

// CommentService defines comment lifecycle operations consumed by handlers.
type CommentService interface {
	// ListForReview returns a review's comments, newest first.
	ListForReview(ctx context.Context, reviewID int) ([]domain.Comment, error)
	// Create inserts a comment under a review.
	Create(ctx context.Context, reviewID int, username, body string) (*domain.Comment, error)
	// Delete removes a comment by id.
	Delete(ctx context.Context, id int) error
}

// CatalogService defines read-only access to reference collections.
type CatalogService interface {
	// Categories returns the full category collection.
	Categories(ctx context.Context) ([]domain.Category, error)
	// Users returns the full user collection.
	Users(ctx context.Context) ([]domain.User, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for reviews, comments, categories, and
// users. It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	reviewSvc  ReviewService
	commentSvc CommentService
	catalogSvc CatalogService
}

// New constructs a Handlers instance bound to the given services.
func New(reviewSvc ReviewService, commentSvc CommentService, catalogSvc CatalogService) *Handlers {
	return &Handlers{reviewSvc: reviewSvc, commentSvc: commentSvc, catalogSvc: catalogSvc}
}

//
// DTOs
//

// ListReviewsResponse is the JSON envelope for the review listing.
type ListReviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
}

// GetReviewResponse is the JSON envelope for a single review.
type GetReviewResponse struct {
	Review *domain.Review `json:"review"`
}

// PatchReviewRequest is the JSON payload for a vote adjustment.
//
// IncVotes is a pointer so that "field absent" and "zero delta" stay
// distinguishable; absence is a validation failure.
type PatchReviewRequest struct {
	// IncVotes is the signed delta added to the review's vote count.
	IncVotes *int `json:"inc_votes" example:"5"`
}

//
// Helpers
//

// parseID validates that a path parameter is a non-negative integer handle.
// Shape failures never reach the store.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

//
// Handlers
//

// ListReviews godoc
// @ID          listReviews
// @Summary     List reviews
// @Description Returns all reviews with live comment counts. Supports sorting by a
// @Description closed set of columns and filtering by category slug.
// @Tags        Reviews
// @Produce     json
//
// @Param       sort_by   query  string  false  "Sort column"  Enums(owner, title, designer, review_img_url, review_body, category, created_at, votes)
// @Param       order     query  string  false  "Sort direction"  Enums(asc, desc)
// @Param       category  query  string  false  "Category slug filter"  example(social deduction)
//
// @Success     200  {object}  handlers.ListReviewsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Disallowed sort_by or order"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown category"
// @Router      /reviews [get]
func (h *Handlers) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.reviewSvc.List(ctx, c.Query("sort_by"), c.Query("order"), c.Query("category"))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, ListReviewsResponse{Reviews: reviews})
}

// GetReview godoc
// @ID          getReview
// @Summary     Get a review by id
// @Tags        Reviews
// @Produce     json
//
// @Param       review_id  path  int  true  "Review ID"  example(3)
//
// @Success     200  {object}  handlers.GetReviewResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "No such review"
// @Router      /reviews/{review_id} [get]
func (h *Handlers) GetReview(c *gin.Context) {
	ctx := c.Request.Context()

	id, valid := parseID(c.Param("review_id"))
	if !valid {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	rev, err := h.reviewSvc.Get(ctx, id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, GetReviewResponse{Review: rev})
}

// PatchReviewVotes godoc
// @ID          patchReviewVotes
// @Summary     Adjust a review's votes
// @Description Adds inc_votes (any integer, positive or negative) to the review's
// @Description vote count atomically and returns the full updated row.
// @Tags        Reviews
// @Accept      json
// @Produce     json
//
// @Param       review_id  path  int                           true  "Review ID"
// @Param       body       body  handlers.PatchReviewRequest  true  "Vote delta"
//
// @Success     200  {object}  handlers.GetReviewResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or non-numeric inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "No such review"
// @Router      /reviews/{review_id} [patch]
func (h *Handlers) PatchReviewVotes(c *gin.Context) {
	ctx := c.Request.Context()

	id, valid := parseID(c.Param("review_id"))
	if !valid {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	var req PatchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Covers absent bodies and non-numeric inc_votes alike.
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	rev, err := h.reviewSvc.UpdateVotes(ctx, id, req.IncVotes)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, GetReviewResponse{Review: rev})
}
