// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the read-only
// reference tables: categories and users.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

// ListCategories returns every category, ordered by slug for stable output.
func ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	out := make([]domain.Category, 0)
	err := db.WithContext(ctx).Order("slug ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryExists reports whether a category with the given slug exists.
// The listing outcome policy depends on this: an empty result for a known
// slug is a valid empty list, for an unknown slug it is a 404.
func CategoryExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Category{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

// ListUsers returns every user, ordered by username for stable output.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := make([]domain.User, 0)
	err := db.WithContext(ctx).Order("username ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
