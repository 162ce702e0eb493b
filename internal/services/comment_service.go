package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/validate"
)

// CommentService lists, posts and deletes comments.
type CommentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{DB: db}
}

// ListForArticle returns the comments of an existing article, newest first.
// An article without comments yields an empty slice and no error.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int) (out []domain.Comment, err error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "ListForArticle",
		trace.WithAttributes(attribute.Int("article.id", articleID)),
	)
	defer func() { endSpan(span, err) }()

	err = Run(ctx,
		func(ctx context.Context) error { return repo.ArticleExists(ctx, s.DB, articleID) },
		func(ctx context.Context) error {
			rows, err := repo.ListComments(ctx, s.DB, articleID)
			out = rows
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Post validates the payload, checks the article and the author
// concurrently, then inserts the comment.
func (s *CommentService) Post(ctx context.Context, articleID int, username, body string) (out *domain.Comment, err error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Post",
		trace.WithAttributes(
			attribute.Int("article.id", articleID),
			attribute.String("author", username),
		),
	)
	defer func() { endSpan(span, err) }()

	var nc validate.NewComment
	err = Run(ctx,
		func(context.Context) error {
			v, err := validate.Comment(username, body)
			nc = v
			return err
		},
		All(
			func(ctx context.Context) error { return repo.ArticleExists(ctx, s.DB, articleID) },
			func(ctx context.Context) error { return repo.UserExists(ctx, s.DB, nc.Username) },
		),
		func(ctx context.Context) error {
			c, err := repo.InsertComment(ctx, s.DB, articleID, nc.Username, nc.Body)
			out = c
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a comment. A comment that disappears between the
// existence check and the delete is still reported as not found.
func (s *CommentService) Delete(ctx context.Context, id int) (err error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int("comment.id", id)),
	)
	defer func() { endSpan(span, err) }()

	return Run(ctx,
		func(ctx context.Context) error { return repo.CommentExists(ctx, s.DB, id) },
		func(ctx context.Context) error {
			n, err := repo.DeleteComment(ctx, s.DB, id)
			if err != nil {
				return err
			}
			if n == 0 {
				return apperr.NotFound()
			}
			return nil
		},
	)
}
