// Package services – ReviewService
//
// This file implements ReviewService, the application-level component that
// owns review listing, lookup, and vote patching. It enforces the listing
// outcome policy (an empty result for a known category is a valid empty list,
// for an unknown category it is a not-found condition) and translates store
// outcomes into the service error taxonomy.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include sort/filter parameters and target identifiers.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Luke95G/Back-end-Project/internal/domain"
	"github.com/Luke95G/Back-end-Project/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReviewService coordinates review reads and vote updates.
type ReviewService struct {
	DB *gorm.DB
}

// List returns reviews sorted and filtered per the supplied parameters.
//
// sortBy and order are validated against closed allow-lists by the repo layer
// (defaults: created_at, DESC); invalid values surface as
// repo.ErrInvalidSortColumn / repo.ErrInvalidSortOrder. category, when
// non-empty, filters by exact slug match.
//
// Outcome policy for a zero-row result with a category filter: if the slug
// exists in the categories table the result is a valid empty list; otherwise
// ErrCategoryNotFound. An unfiltered zero-row result is an empty list.
func (s *ReviewService) List(ctx context.Context, sortBy, order, category string) ([]domain.Review, error) {
	tr := otel.Tracer("services/ReviewService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("review.sort_by", sortBy),
			attribute.String("review.order", order),
			attribute.String("review.category", category),
		),
	)
	defer span.End()

	reviews, err := repo.ListReviews(ctx, s.DB, sortBy, order, category)
	if err != nil {
		return nil, err
	}

	if len(reviews) == 0 && category != "" {
		known, err := repo.CategoryExists(ctx, s.DB, category)
		if err != nil {
			return nil, err
		}
		if !known {
			return nil, ErrCategoryNotFound
		}
	}
	return reviews, nil
}

// Get returns a single review with its live comment count.
func (s *ReviewService) Get(ctx context.Context, id int) (*domain.Review, error) {
	tr := otel.Tracer("services/ReviewService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.Int("review.id", id)),
	)
	defer span.End()

	rev, err := repo.GetReview(ctx, s.DB, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rev, nil
}

// UpdateVotes applies a signed delta to a review's vote count atomically at
// the store and returns the updated row. delta may be nil when the request
// carried no usable inc_votes; that is a validation failure, checked before
// any store call.
func (s *ReviewService) UpdateVotes(ctx context.Context, id int, delta *int) (*domain.Review, error) {
	tr := otel.Tracer("services/ReviewService")
	ctx, span := tr.Start(ctx, "UpdateVotes",
		trace.WithAttributes(attribute.Int("review.id", id)),
	)
	defer span.End()

	if delta == nil {
		return nil, ErrMissingVoteDelta
	}

	rev, err := repo.UpdateReviewVotes(ctx, s.DB, id, *delta)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrVoteTargetNotFound
		}
		return nil, err
	}
	return rev, nil
}
