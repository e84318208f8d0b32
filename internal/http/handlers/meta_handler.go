// API metadata handler.
//
// GET /api serves a static catalog of every endpoint the service exposes,
// with the queries it accepts and an example response. The catalog is
// assembled once at package init; it never touches the store.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Endpoint describes one operation in the API catalog.
type Endpoint struct {
	Description     string         `json:"description"`
	Queries         []string       `json:"queries"`
	ExampleResponse map[string]any `json:"exampleResponse,omitempty"`
}

// endpointCatalog is keyed by "METHOD /path".
var endpointCatalog = map[string]Endpoint{
	"GET /api": {
		Description: "serves a json representation of all the available endpoints of the api",
		Queries:     []string{},
	},
	"GET /api/categories": {
		Description: "serves an array of all categories",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"categories": []map[string]any{
				{"slug": "social deduction", "description": "Games where you read other players"},
			},
		},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"users": []map[string]any{
				{"username": "mallionaire", "name": "haz", "avatar_url": ""},
			},
		},
	},
	"GET /api/reviews": {
		Description: "serves an array of all reviews with comment counts",
		Queries:     []string{"sort_by", "order", "category"},
		ExampleResponse: map[string]any{
			"reviews": []map[string]any{
				{
					"review_id":     1,
					"title":         "Agricola",
					"designer":      "Uwe Rosenberg",
					"owner":         "mallionaire",
					"category":      "euro game",
					"votes":         1,
					"comment_count": 0,
				},
			},
		},
	},
	"GET /api/reviews/:review_id": {
		Description: "serves a single review with its comment count",
		Queries:     []string{},
	},
	"PATCH /api/reviews/:review_id": {
		Description: "applies an inc_votes delta to a review and serves the updated row",
		Queries:     []string{},
	},
	"GET /api/reviews/:review_id/comments": {
		Description: "serves the comments for a review, newest first",
		Queries:     []string{},
	},
	"POST /api/reviews/:review_id/comments": {
		Description: "adds a comment to a review and serves the created row",
		Queries:     []string{},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment by id, serving no body",
		Queries:     []string{},
	},
}

// GetAPI godoc
// @ID          getAPI
// @Summary     Describe the API
// @Description Serves a static catalog of all endpoints, their accepted queries,
// @Description and example responses.
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  map[string]handlers.Endpoint
// @Router      / [get]
func (h *Handlers) GetAPI(c *gin.Context) {
	ok(c, http.StatusOK, endpointCatalog)
}
