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

// ArticleQuery holds the raw query-string values of an article listing.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
}

// ArticleService reads articles and applies vote deltas.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{DB: db}
}

// Get returns a single article, body included.
func (s *ArticleService) Get(ctx context.Context, id int) (out *domain.Article, err error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int("article.id", id)),
	)
	defer func() { endSpan(span, err) }()

	err = Run(ctx, func(ctx context.Context) error {
		a, err := repo.GetArticle(ctx, s.DB, id)
		out = a
		return err
	})
	return out, err
}

// List validates the sort parameters, checks the topic when one is given,
// and returns the matching summaries. A topic that exists but has no
// articles is reported as not found; an unfiltered empty listing is not.
func (s *ArticleService) List(ctx context.Context, q ArticleQuery) (out []domain.ArticleSummary, err error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("topic", q.Topic),
			attribute.String("sort_by", q.SortBy),
			attribute.String("order", q.Order),
		),
	)
	defer func() { endSpan(span, err) }()

	var f repo.ArticleFilter
	err = Run(ctx,
		func(context.Context) error {
			col, err := validate.SortColumn(q.SortBy)
			f.SortBy = col
			return err
		},
		func(context.Context) error {
			dir, err := validate.SortOrder(q.Order)
			f.Order = dir
			return err
		},
		func(ctx context.Context) error {
			if q.Topic == "" {
				return nil
			}
			f.Topic = q.Topic
			return repo.TopicExists(ctx, s.DB, q.Topic)
		},
		func(ctx context.Context) error {
			rows, err := repo.ListArticles(ctx, s.DB, f)
			if err != nil {
				return err
			}
			if len(rows) == 0 && f.Topic != "" {
				return apperr.NotFound()
			}
			out = rows
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateVotes applies delta to the article's vote counter and returns the
// updated article. Deltas outside the 32-bit range are a validation error;
// a nil delta is forwarded to the store, which rejects it.
func (s *ArticleService) UpdateVotes(ctx context.Context, id int, delta *int) (out *domain.Article, err error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "UpdateVotes",
		trace.WithAttributes(
			attribute.Int("article.id", id),
			attribute.Bool("delta.present", delta != nil),
		),
	)
	defer func() { endSpan(span, err) }()

	err = Run(ctx,
		func(context.Context) error {
			d, err := validate.VoteDelta(delta)
			delta = d
			return err
		},
		func(ctx context.Context) error { return repo.ArticleExists(ctx, s.DB, id) },
		func(ctx context.Context) error {
			a, err := repo.UpdateArticleVotes(ctx, s.DB, id, delta)
			out = a
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}
