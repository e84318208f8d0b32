// Catalog HTTP handlers.
//
// Read-only endpoints for the reference collections:
//   - GET /api/categories
//   - GET /api/users
//
// Both take no parameters and always return the full collection.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

// ListCategoriesResponse is the JSON envelope for the category collection.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// ListUsersResponse is the JSON envelope for the user collection.
type ListUsersResponse struct {
	Users []domain.User `json:"users"`
}

// GetCategories godoc
// @ID          getCategories
// @Summary     List all categories
// @Tags        Catalog
// @Produce     json
// @Success     200  {object}  handlers.ListCategoriesResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /categories [get]
func (h *Handlers) GetCategories(c *gin.Context) {
	categories, err := h.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, ListCategoriesResponse{Categories: categories})
}

// GetUsers godoc
// @ID          getUsers
// @Summary     List all users
// @Tags        Catalog
// @Produce     json
// @Success     200  {object}  handlers.ListUsersResponse
// @Failure     500  {object}  handlers.ErrorResponse
// @Router      /users [get]
func (h *Handlers) GetUsers(c *gin.Context) {
	users, err := h.catalogSvc.Users(c.Request.Context())
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, ListUsersResponse{Users: users})
}
