// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they parse path, query and body values, call
// a service, and shape the result as {<resource>: data}. Every error is
// handed to fail() untouched.
package handlers

import (
	"context"
	"encoding/json"

	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/services"
)

//
// Service contracts (context-aware)
//

// ArticleService reads articles and applies vote deltas.
type ArticleService interface {
	// Get returns one article including its body.
	Get(ctx context.Context, id int) (*domain.Article, error)
	// List returns summaries filtered by topic and ordered by a validated column.
	List(ctx context.Context, q services.ArticleQuery) ([]domain.ArticleSummary, error)
	// UpdateVotes adds delta to the article's votes.
	UpdateVotes(ctx context.Context, id int, delta *int) (*domain.Article, error)
}

// CommentService lists, posts and deletes comments.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error)
	Post(ctx context.Context, articleID int, username, body string) (*domain.Comment, error)
	Delete(ctx context.Context, id int) error
}

// TopicService lists topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
}

// UserService lists users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
}

// Handlers groups the route handlers and their dependencies.
type Handlers struct {
	articles  ArticleService
	comments  CommentService
	topics    TopicService
	users     UserService
	endpoints json.RawMessage
}

// New builds Handlers. endpoints is the endpoint-description document
// served verbatim by GET /api.
func New(articles ArticleService, comments CommentService, topics TopicService, users UserService, endpoints json.RawMessage) *Handlers {
	return &Handlers{
		articles:  articles,
		comments:  comments,
		topics:    topics,
		users:     users,
		endpoints: endpoints,
	}
}
