// Package services – CatalogService
//
// Read-only access to the reference tables: categories and users. Both are
// seeded externally and never mutated through this API, so the service is a
// thin, instrumented pass-through over the repo layer.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Luke95G/Back-end-Project/internal/domain"
	"github.com/Luke95G/Back-end-Project/internal/repo"

	"go.opentelemetry.io/otel"
)

// CatalogService serves the read-only reference collections.
type CatalogService struct {
	DB *gorm.DB
}

// Categories returns the full category collection.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	tr := otel.Tracer("services/CatalogService")
	ctx, span := tr.Start(ctx, "Categories")
	defer span.End()

	return repo.ListCategories(ctx, s.DB)
}

// Users returns the full user collection.
func (s *CatalogService) Users(ctx context.Context) ([]domain.User, error) {
	tr := otel.Tracer("services/CatalogService")
	ctx, span := tr.Start(ctx, "Users")
	defer span.End()

	return repo.ListUsers(ctx, s.DB)
}
