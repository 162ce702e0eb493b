// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for comments.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-api/internal/domain"
)

// ListComments returns the comments of an article, most recent first.
// It does not check that the article exists.
func ListComments(ctx context.Context, db *gorm.DB, articleID int) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Order("comment_id desc").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// InsertComment creates a comment on articleID and returns the stored row,
// including its generated id, default votes and timestamp.
func InsertComment(ctx context.Context, db *gorm.DB, articleID int, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// DeleteComment removes a comment by id and reports how many rows were
// removed. Zero means the comment did not exist; the caller decides how to
// surface that.
func DeleteComment(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}
