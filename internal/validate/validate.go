// Package validate holds the pure input rules applied before any store
// access. Each rule returns the accepted (possibly normalized) value or an
// apperr.Error of kind validation. None of them touch the database.
package validate

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-news-api/internal/apperr"
)

// Defaults applied to GET /articles when the query omits them.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
)

// sortColumns is the allow-list for ?sort_by.
var sortColumns = map[string]struct{}{
	"author":          {},
	"title":           {},
	"article_id":      {},
	"topic":           {},
	"votes":           {},
	"article_img_url": {},
	"comment_count":   {},
	"created_at":      {},
}

// SortColumns returns the allow-listed sort columns.
func SortColumns() []string {
	out := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		out = append(out, k)
	}
	return out
}

// SortColumn accepts an allow-listed column name. Empty means the default.
func SortColumn(raw string) (string, error) {
	if raw == "" {
		return DefaultSortBy, nil
	}
	if _, ok := sortColumns[raw]; !ok {
		return "", apperr.BadRequest()
	}
	return raw, nil
}

// SortOrder accepts "asc" or "desc" in any case and returns it uppercased.
// Empty means the default.
func SortOrder(raw string) (string, error) {
	switch {
	case raw == "":
		return DefaultOrder, nil
	case strings.EqualFold(raw, "asc"):
		return "ASC", nil
	case strings.EqualFold(raw, "desc"):
		return "DESC", nil
	}
	return "", apperr.BadRequest()
}

// ResourceID parses an article or comment id taken from a path segment.
//
// An empty segment is a missing route, not a malformed id, so it yields
// not-found. Anything that is not a base-10 integer in the store's 32-bit id
// domain is a validation error. Zero and negative values parse; they can
// never exist and are rejected later by the existence check.
func ResourceID(raw string) (int, error) {
	if raw == "" {
		return 0, apperr.NotFound()
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperr.BadRequest()
	}
	return int(n), nil
}

// VoteDelta bounds an inc_votes value to the 32-bit range so that repeated
// increments cannot overflow the stored counter. A nil delta passes through
// unchanged; the store rejects it.
func VoteDelta(delta *int) (*int, error) {
	if delta == nil {
		return nil, nil
	}
	if *delta < math.MinInt32 || *delta > math.MaxInt32 {
		return nil, apperr.BadRequest()
	}
	return delta, nil
}

// NewComment is the accepted payload for posting a comment.
type NewComment struct {
	Username string
	Body     string
}

// Comment requires a non-empty username and body. The body is normalized to
// NFC; surrounding whitespace is kept as written.
func Comment(username, body string) (NewComment, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(body) == "" {
		return NewComment{}, apperr.BadRequest()
	}
	return NewComment{Username: username, Body: norm.NFC.String(body)}, nil
}
