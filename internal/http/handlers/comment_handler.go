// Comment HTTP handlers.
//
// This file exposes REST endpoints for comment resources:
//   - GET    /articles/{article_id}/comments  (list, newest first)
//   - POST   /articles/{article_id}/comments  (create)
//   - DELETE /comments/{comment_id}           (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/domain"
)

// PostCommentRequest is the body of POST /articles/{article_id}/comments.
// Other fields are ignored.
type PostCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body"     example:"This morning, I showered for nine minutes."`
}

// CommentsResponse wraps GET /articles/{article_id}/comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// PostedCommentResponse wraps POST /articles/{article_id}/comments.
type PostedCommentResponse struct {
	PostedComment *domain.Comment `json:"postedComment"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List comments of an article
// @Description Returns the article's comments, newest first. An existing article without comments answers 200 {"msg":"No content"}.
// @Tags        Comments
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     200  {object}  handlers.CommentsResponse
// @Success     200  {object}  handlers.MessageResponse  "No content"
// @Failure     400  {object}  handlers.ErrorResponse    "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse    "Not found"
// @Failure     500  {object}  handlers.ErrorResponse    "Internal server error"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		fail(c, err)
		return
	}
	list, err := h.comments.ListForArticle(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if len(list) == 0 {
		ok(c, http.StatusOK, MessageResponse{Msg: MsgNoContent})
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: list})
}

// PostComment godoc
// @ID          postComment
// @Summary     Comment on an article
// @Description Creates a comment by an existing user. Unknown body fields are ignored.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                           true  "Article ID"  example(1)
// @Param       body        body  handlers.PostCommentRequest  true  "New comment"
// @Success     201  {object}  handlers.PostedCommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		fail(c, err)
		return
	}
	var req PostCommentRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	cm, err := h.comments.Post(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, PostedCommentResponse{PostedComment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"  example(3)
// @Success     204  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
