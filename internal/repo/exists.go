// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the existence checks used as
// preconditions before dependent reads and writes.
//
// Each check returns nil when the row is present and apperr.NotFound when it
// is not. The store has no mapping from a foreign-key violation to an HTTP
// status of its own, so callers must run (and wait for) these before the
// operation they guard.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
)

// ArticleExists checks articles.article_id.
func ArticleExists(ctx context.Context, db *gorm.DB, id int) error {
	return exists(ctx, db, &domain.Article{}, "article_id", id)
}

// CommentExists checks comments.comment_id.
func CommentExists(ctx context.Context, db *gorm.DB, id int) error {
	return exists(ctx, db, &domain.Comment{}, "comment_id", id)
}

// UserExists checks users.username.
func UserExists(ctx context.Context, db *gorm.DB, username string) error {
	return exists(ctx, db, &domain.User{}, "username", username)
}

// TopicExists checks topics.slug.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) error {
	return exists(ctx, db, &domain.Topic{}, "slug", slug)
}

func exists(ctx context.Context, db *gorm.DB, model any, column string, value any) error {
	var n int64
	err := db.WithContext(ctx).
		Model(model).
		Where(column+" = ?", value).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return apperr.NotFound()
	}
	return nil
}
