// Comment HTTP handlers.
//
// This file exposes REST endpoints for comment resources:
//   - GET    /api/reviews/{review_id}/comments  (list, newest first)
//   - POST   /api/reviews/{review_id}/comments  (create)
//   - DELETE /api/comments/{comment_id}         (delete)
//
// The comment listing resolves the parent review before returning rows; a
// missing parent takes precedence over an empty comment set.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luke95G/Back-end-Project/internal/domain"
)

//
// DTOs
//

// PostCommentRequest is the JSON payload for creating a comment.
type PostCommentRequest struct {
	// Username is the commenting user; must reference an existing user.
	Username string `json:"username" example:"bainesface"`
	// Body is the comment text.
	Body string `json:"body" example:"EPIC board game!"`
}

// PostCommentResponse is the JSON envelope for a newly created comment.
type PostCommentResponse struct {
	NewComment *domain.Comment `json:"newComment"`
}

// commentsList nests the comment rows one level down; the public payload is
// { "comments": { "comments": [...] } }.
type commentsList struct {
	Comments []domain.Comment `json:"comments"`
}

// ListCommentsResponse is the JSON envelope for a review's comments.
type ListCommentsResponse struct {
	Comments commentsList `json:"comments"`
}

//
// Handlers
//

// ListComments godoc
// @ID          listComments
// @Summary     List comments for a review
// @Description Returns the review's comments ordered newest first. An existing
// @Description review with no comments yields an empty array.
// @Tags        Comments
// @Produce     json
//
// @Param       review_id  path  int  true  "Review ID"
//
// @Success     200  {object}  handlers.ListCommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "No such review"
// @Router      /reviews/{review_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	id, valid := parseID(c.Param("review_id"))
	if !valid {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	comments, err := h.commentSvc.ListForReview(ctx, id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, ListCommentsResponse{Comments: commentsList{Comments: comments}})
}

// PostComment godoc
// @ID          postComment
// @Summary     Add a comment to a review
// @Description Creates a comment with a server-assigned id and timestamp. Both
// @Description username and body are required; a missing field fails before any insert.
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       review_id  path  int                           true  "Review ID"
// @Param       body       body  handlers.PostCommentRequest  true  "Comment payload"
//
// @Success     201  {object}  handlers.PostCommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing username or body"
// @Failure     404  {object}  handlers.ErrorResponse  "Parent review does not exist"
// @Router      /reviews/{review_id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	ctx := c.Request.Context()

	id, valid := parseID(c.Param("review_id"))
	if !valid {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	created, err := h.commentSvc.Create(ctx, id, req.Username, req.Body)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, PostCommentResponse{NewComment: created})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment by id
// @Tags        Comments
// @Produce     json
//
// @Param       comment_id  path  int  true  "Comment ID"
//
// @Success     204  "Deleted, empty body"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "No such comment"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	id, valid := parseID(c.Param("comment_id"))
	if !valid {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	if err := h.commentSvc.Delete(ctx, id); err != nil {
		failFrom(c, err)
		return
	}
	noContent(c)
}
