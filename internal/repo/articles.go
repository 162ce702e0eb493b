// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for articles.
//
// Functions:
//
//   - GetArticle(ctx, db, id) -> *domain.Article, error
//     Fetches one article including its body, or apperr.NotFound.
//
//   - ListArticles(ctx, db, filter) -> []domain.ArticleSummary, error
//     Returns articles without bodies, each with a computed comment_count,
//     optionally filtered by topic and ordered by an allow-listed column.
//
//   - UpdateArticleVotes(ctx, db, id, delta) -> *domain.Article, error
//     Atomically adds delta to votes and returns the updated row.
//
// Errors are classified here: missing rows become apperr.NotFound and
// constraint/data violations become apperr.Store. Anything else is returned
// unchanged.
package repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
)

// ArticleFilter narrows and orders ListArticles. SortBy and Order are
// expected to be validated already (see validate.SortColumn/SortOrder);
// unknown values are still rejected here.
type ArticleFilter struct {
	Topic  string
	SortBy string
	Order  string
}

// articleSortExprs maps a validated sort key to its SQL expression.
var articleSortExprs = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

var articleSummaryColumns = []string{
	"articles.author",
	"articles.title",
	"articles.article_id",
	"articles.topic",
	"articles.created_at",
	"articles.votes",
	"articles.article_img_url",
	"COUNT(comments.comment_id) AS comment_count",
}

// GetArticle fetches a single article by id.
func GetArticle(ctx context.Context, db *gorm.DB, id int) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).Where("article_id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// ListArticles returns article summaries matching f. An empty result is not
// an error at this layer.
func ListArticles(ctx context.Context, db *gorm.DB, f ArticleFilter) ([]domain.ArticleSummary, error) {
	query, args, err := articleListSQL(f, sq.Question)
	if err != nil {
		return nil, err
	}
	out := []domain.ArticleSummary{}
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&out).Error; err != nil {
		return nil, translate(err)
	}
	if out == nil {
		out = []domain.ArticleSummary{}
	}
	return out, nil
}

// articleListSQL builds the summary query. Only allow-listed identifiers are
// interpolated; the topic is always a bound parameter.
func articleListSQL(f ArticleFilter, ph sq.PlaceholderFormat) (string, []any, error) {
	col, ok := articleSortExprs[f.SortBy]
	if !ok {
		return "", nil, apperr.BadRequest()
	}
	dir := f.Order
	if dir != "ASC" && dir != "DESC" {
		return "", nil, apperr.BadRequest()
	}

	b := sq.Select(articleSummaryColumns...).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		GroupBy("articles.article_id").
		OrderBy(col+" "+dir, "articles.article_id "+dir).
		PlaceholderFormat(ph)
	if f.Topic != "" {
		b = b.Where(sq.Eq{"articles.topic": f.Topic})
	}
	return b.ToSql()
}

// UpdateArticleVotes adds delta to the article's votes in a single
// statement and returns the updated article. A nil delta is passed through
// as SQL NULL so that the NOT NULL constraint on votes rejects it as a store
// error.
func UpdateArticleVotes(ctx context.Context, db *gorm.DB, id int, delta *int) (*domain.Article, error) {
	var arg any
	if delta != nil {
		arg = *delta
	}
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Update("votes", gorm.Expr("votes + ?", arg))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound()
	}
	return GetArticle(ctx, db, id)
}
