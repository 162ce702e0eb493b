// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles               (list, filter by topic, sort)
//   - GET    /articles/{article_id}  (fetch one)
//   - PATCH  /articles/{article_id}  (apply a vote delta)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/services"
)

// PatchArticleRequest is the body of PATCH /articles/{article_id}.
type PatchArticleRequest struct {
	// IncVotes is a signed delta added to the article's votes.
	IncVotes *int `json:"inc_votes" example:"1"`
}

// ArticlesResponse wraps GET /articles.
type ArticlesResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
}

// ArticleResponse wraps GET /articles/{article_id}.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// UpdatedArticleResponse wraps PATCH /articles/{article_id}.
type UpdatedArticleResponse struct {
	UpdatedArticle *domain.Article `json:"updatedArticle"`
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns all articles without their bodies, each with a comment_count. A topic that exists but has no articles answers 404.
// @Tags        Articles
// @Produce     json
// @Param       topic    query  string  false  "Filter by topic slug"  example(mitch)
// @Param       sort_by  query  string  false  "Sort column"  Enums(author, title, article_id, topic, votes, article_img_url, comment_count, created_at)  default(created_at)
// @Param       order    query  string  false  "Sort direction"  Enums(asc, desc)  default(desc)
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	list, err := h.articles.List(c.Request.Context(), services.ArticleQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: list})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		fail(c, err)
		return
	}
	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// PatchArticle godoc
// @ID          patchArticle
// @Summary     Vote on an article
// @Description Adds inc_votes (a signed integer) to the article's votes and returns the updated article. A missing inc_votes is rejected with 400.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                            true  "Article ID"  example(3)
// @Param       body        body  handlers.PatchArticleRequest  true  "Vote delta"
// @Success     200  {object}  handlers.UpdatedArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal server error"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) PatchArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		fail(c, err)
		return
	}
	var req PatchArticleRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	a, err := h.articles.UpdateVotes(c.Request.Context(), id, req.IncVotes)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, UpdatedArticleResponse{UpdatedArticle: a})
}
