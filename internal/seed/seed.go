// Package seed resets the schema and loads a dataset. It backs the `seed`
// command and gives tests a known starting state.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-api/internal/domain"
)

// Data is a full dataset in insertion order.
type Data struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []domain.Article
	Comments []domain.Comment
}

// Run drops every table, recreates the schema and inserts data inside a
// single transaction. Articles and comments are inserted one row at a time
// without explicit ids so that generated ids follow slice order and the
// id sequences stay in step with the data.
func Run(ctx context.Context, db *gorm.DB, data Data) error {
	models := domain.All()
	reversed := make([]any, 0, len(models))
	for i := len(models) - 1; i >= 0; i-- {
		reversed = append(reversed, models[i])
	}

	if err := db.WithContext(ctx).Migrator().DropTable(reversed...); err != nil {
		return fmt.Errorf("seed: drop tables: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("seed: migrate: %w", err)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Topics) > 0 {
			if err := tx.Omit(clause.Associations).Create(&data.Topics).Error; err != nil {
				return fmt.Errorf("seed: topics: %w", err)
			}
		}
		if len(data.Users) > 0 {
			if err := tx.Omit(clause.Associations).Create(&data.Users).Error; err != nil {
				return fmt.Errorf("seed: users: %w", err)
			}
		}
		for i := range data.Articles {
			a := data.Articles[i]
			a.ArticleID = 0
			if err := tx.Omit(clause.Associations).Create(&a).Error; err != nil {
				return fmt.Errorf("seed: article %d: %w", i+1, err)
			}
		}
		for i := range data.Comments {
			c := data.Comments[i]
			c.CommentID = 0
			if err := tx.Omit(clause.Associations).Create(&c).Error; err != nil {
				return fmt.Errorf("seed: comment %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("topics", len(data.Topics)).
		Int("users", len(data.Users)).
		Int("articles", len(data.Articles)).
		Int("comments", len(data.Comments)).
		Msg("seed complete")
	return nil
}
