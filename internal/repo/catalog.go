package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

// ListTopics returns every topic ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	if err := db.WithContext(ctx).Order("slug").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	if err := db.WithContext(ctx).Order("username").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
