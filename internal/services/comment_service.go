// Package services – CommentService
//
// This file implements CommentService: listing the comments under a review,
// creating new comments, and removing comments by id. Field requirements are
// checked before any mutating store call; referential-integrity rejections
// from the store are classified through the repo error classifier.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Luke95G/Back-end-Project/internal/domain"
	"github.com/Luke95G/Back-end-Project/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CommentService coordinates comment reads and the create/delete lifecycle.
type CommentService struct {
	DB *gorm.DB
}

// ListForReview returns a review's comments, newest first. The parent review
// is resolved as its own round trip; its outcome takes precedence, so a
// missing review surfaces as ErrReviewNotFound rather than an empty list.
func (s *CommentService) ListForReview(ctx context.Context, reviewID int) ([]domain.Comment, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "ListForReview",
		trace.WithAttributes(attribute.Int("review.id", reviewID)),
	)
	defer span.End()

	exists, err := repo.ReviewExists(ctx, s.DB, reviewID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrReviewNotFound
	}

	return repo.ListComments(ctx, s.DB, reviewID)
}

// Create inserts a comment under a review. Both username and body are
// required; a missing field fails before any insert. A well-formed but
// nonexistent review id is detected via the store's foreign-key rejection.
func (s *CommentService) Create(ctx context.Context, reviewID int, username, body string) (*domain.Comment, error) {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int("review.id", reviewID),
			attribute.String("comment.author", username),
		),
	)
	defer span.End()

	if strings.TrimSpace(username) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrMissingCommentFields
	}

	c, err := repo.CreateComment(ctx, s.DB, reviewID, username, body)
	if err != nil {
		if repo.IsForeignKeyViolation(err) {
			return nil, ErrParentReviewNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a comment by id.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	tr := otel.Tracer("services/CommentService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int("comment.id", id)),
	)
	defer span.End()

	if err := repo.DeleteComment(ctx, s.DB, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
