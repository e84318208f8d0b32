// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Review
// model, including the dynamic listing query.
//
// The listing query interpolates the ORDER BY column and direction into the
// query text, because standard parameterized SQL cannot bind identifiers.
// Both values are therefore checked against closed allow-lists before any
// text is assembled; everything user-supplied beyond that (the category
// filter) travels as a bound parameter.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

// Query-shape errors returned before any SQL reaches the store.
var (
	// ErrInvalidSortColumn is returned when sort_by is not in the allow-list.
	ErrInvalidSortColumn = errors.New("sort_by column not allowed")

	// ErrInvalidSortOrder is returned when order is neither ASC nor DESC.
	ErrInvalidSortOrder = errors.New("order must be ASC or DESC")
)

// reviewSortColumns is the closed vocabulary of sortable review columns.
// The listing query interpolates the chosen column, so membership here is a
// hard precondition, not a convenience check.
var reviewSortColumns = map[string]struct{}{
	"owner":          {},
	"title":          {},
	"designer":       {},
	"review_img_url": {},
	"review_body":    {},
	"category":       {},
	"created_at":     {},
	"votes":          {},
}

// reviewSelect is the aggregate projection shared by listing and single-row
// lookups: every review column plus a live comment count.
const reviewSelect = `SELECT reviews.*,
CAST(COUNT(comments.comment_id) AS int) AS comment_count
FROM reviews
LEFT JOIN comments ON comments.review_id = reviews.review_id`

// normalizeListing validates sort_by/order, applies defaults, and returns the
// column and direction safe to interpolate.
func normalizeListing(sortBy, order string) (col, dir string, err error) {
	col = sortBy
	if col == "" {
		col = "created_at"
	}
	if _, ok := reviewSortColumns[col]; !ok {
		return "", "", ErrInvalidSortColumn
	}

	dir = strings.ToUpper(order)
	if dir == "" {
		dir = "DESC"
	}
	if dir != "ASC" && dir != "DESC" {
		return "", "", ErrInvalidSortOrder
	}
	return col, dir, nil
}

// ListReviews returns reviews with their comment counts, optionally filtered
// by category (bound parameter) and ordered by a validated column/direction.
//
// A zero-row result is returned as an empty slice; distinguishing "valid
// filter with no matches" from "unknown category" is the service layer's
// concern (see CategoryExists).
func ListReviews(ctx context.Context, db *gorm.DB, sortBy, order, category string) ([]domain.Review, error) {
	col, dir, err := normalizeListing(sortBy, order)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(reviewSelect)
	args := make([]any, 0, 1)
	if category != "" {
		b.WriteString("\nWHERE reviews.category = ?")
		args = append(args, category)
	}
	b.WriteString("\nGROUP BY reviews.review_id")
	// col and dir passed the allow-list above; safe to splice.
	b.WriteString("\nORDER BY reviews." + col + " " + dir)

	out := make([]domain.Review, 0)
	if err := db.WithContext(ctx).Raw(b.String(), args...).Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetReview fetches a single review with its comment count.
// Returns gorm.ErrRecordNotFound when no row matches.
func GetReview(ctx context.Context, db *gorm.DB, id int) (*domain.Review, error) {
	var rows []domain.Review
	err := db.WithContext(ctx).
		Raw(reviewSelect+"\nWHERE reviews.review_id = ?\nGROUP BY reviews.review_id", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// ReviewExists reports whether a review row with the given id exists.
func ReviewExists(ctx context.Context, db *gorm.DB, id int) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Review{}).Where("review_id = ?", id).Count(&n).Error
	return n > 0, err
}

// UpdateReviewVotes adds delta to a review's vote count in a single UPDATE so
// concurrent patches cannot lose increments, then returns the full updated
// row. Returns gorm.ErrRecordNotFound when the id matches nothing.
func UpdateReviewVotes(ctx context.Context, db *gorm.DB, id, delta int) (*domain.Review, error) {
	res := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("review_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetReview(ctx, db, id)
}
