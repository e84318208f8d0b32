// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model.
//
// Error semantics:
//   - Inserting a comment against a missing review relies on the database
//     foreign-key constraint and is returned as a raw DB error. The service
//     layer detects it via IsForeignKeyViolation and translates it into a
//     domain error.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

// ListComments returns all comments for a review, newest first, with the
// comment id as a deterministic tiebreak for equal timestamps.
func ListComments(ctx context.Context, db *gorm.DB, reviewID int) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0)
	err := db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at DESC, comment_id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment inserts a comment row with a server-assigned timestamp and
// returns it with the generated id. The review must exist; a violation of the
// review FK (or of the author FK) comes back as the store's constraint error.
func CreateComment(ctx context.Context, db *gorm.DB, reviewID int, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		Author:    author,
		Body:      body,
		ReviewID:  reviewID,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment removes a comment by id.
// Returns gorm.ErrRecordNotFound when the id matches nothing.
func DeleteComment(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Where("comment_id = ?", id).Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountComments returns the live number of comments for a review. Raw COUNT
// so a missing table surfaces as an error.
func CountComments(ctx context.Context, db *gorm.DB, reviewID int) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM comments WHERE review_id = ?", reviewID).
		Scan(&total).Error
	return total, err
}
