package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/repo"
)

// TopicService lists topics.
type TopicService struct {
	DB *gorm.DB
}

func NewTopicService(db *gorm.DB) *TopicService { return &TopicService{DB: db} }

func (s *TopicService) List(ctx context.Context) (out []domain.Topic, err error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "List")
	defer func() { endSpan(span, err) }()

	return repo.ListTopics(ctx, s.DB)
}

// UserService lists users.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{DB: db} }

func (s *UserService) List(ctx context.Context) (out []domain.User, err error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer func() { endSpan(span, err) }()

	return repo.ListUsers(ctx, s.DB)
}
