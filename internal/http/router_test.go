package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/config"
	"github.com/tbourn/go-news-api/internal/endpoints"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/seed"
)

// --- harness ---

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "router_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(db) })
	if err := seed.Run(context.Background(), db, seed.TestData()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath:  "/api",
		QueryTimeout: 5 * time.Second,
		OTEL:         config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	RegisterRoutes(r, db, endpoints.Default(), cfg)
	return r, db
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
}

func expectMsg(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d; want %d (body=%s)", w.Code, status, w.Body.String())
	}
	var body map[string]any
	decodeInto(t, w, &body)
	if len(body) != 1 || body["msg"] != msg {
		t.Fatalf("body = %v; want {msg:%q}", body, msg)
	}
}

type articleRow struct {
	ArticleID    int       `json:"article_id"`
	Topic        string    `json:"topic"`
	Votes        int       `json:"votes"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount int       `json:"comment_count"`
	Body         *string   `json:"body"`
}

type commentRow struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// --- operational surface ---

func TestRegisterRoutes_Health_Metrics_CORS(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://anywhere.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}

	w = call(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// Swagger is off unless enabled.
	expectMsg(t, call(r, http.MethodGet, "/swagger/index.html", ""), http.StatusNotFound, "Not found")
}

func TestRegisterRoutes_CORSWithOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	r, _ := newTestRouter(t, cfg)

	// A cross-origin request: the API host differs from the allowed origin.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Host = "api.local"
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Host = "api.local"
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("disallowed origin: status=%d ACAO=%q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRegisterRoutes_SwaggerEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	r, _ := newTestRouter(t, cfg)

	w := call(r, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"operationId": "listArticles"`) {
		t.Fatalf("swagger doc: %d %s", w.Code, w.Body.String())
	}
}

func TestRegisterRoutes_GzipWhenAccepted(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got %d %q", w.Code, w.Header().Get("Content-Encoding"))
	}
}

// --- unmatched routes ---

func TestUnmatchedRoutes_NotFound(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/not-a-route"},
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/api/articles/1/comments/extra"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodPost, "/health"},
	} {
		expectMsg(t, call(r, tc.method, tc.path, ""), http.StatusNotFound, "Not found")
	}
}

// --- GET /api, /topics, /users ---

func TestGetEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := call(r, http.MethodGet, "/api", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Endpoints map[string]struct {
			Description string `json:"description"`
		} `json:"endpoints"`
	}
	decodeInto(t, w, &body)
	for _, k := range []string{"GET /api", "GET /api/topics", "GET /api/articles"} {
		if body.Endpoints[k].Description == "" {
			t.Fatalf("missing %q in %s", k, w.Body.String())
		}
	}
}

func TestTopicsAndUsers(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	var topics struct {
		Topics []struct{ Slug, Description string } `json:"topics"`
	}
	w := call(r, http.MethodGet, "/api/topics", "")
	decodeInto(t, w, &topics)
	if w.Code != http.StatusOK || len(topics.Topics) != 3 {
		t.Fatalf("topics: %d %s", w.Code, w.Body.String())
	}

	var users struct {
		Users []struct {
			Username  string `json:"username"`
			Name      string `json:"name"`
			AvatarURL string `json:"avatar_url"`
		} `json:"users"`
	}
	w = call(r, http.MethodGet, "/api/users", "")
	decodeInto(t, w, &users)
	if w.Code != http.StatusOK || len(users.Users) != 4 {
		t.Fatalf("users: %d %s", w.Code, w.Body.String())
	}
	for _, u := range users.Users {
		if u.Username == "" || u.Name == "" || u.AvatarURL == "" {
			t.Fatalf("incomplete user: %+v", u)
		}
	}
}

// --- GET /api/articles ---

func listArticles(t *testing.T, r http.Handler, query string) []articleRow {
	t.Helper()
	w := call(r, http.MethodGet, "/api/articles"+query, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/articles%s = %d %s", query, w.Code, w.Body.String())
	}
	var body struct {
		Articles []articleRow `json:"articles"`
	}
	decodeInto(t, w, &body)
	return body.Articles
}

func TestListArticles_DefaultOrderAndShape(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	rows := listArticles(t, r, "")
	if len(rows) != 13 {
		t.Fatalf("len = %d; want 13", len(rows))
	}
	if rows[0].ArticleID != 3 {
		t.Fatalf("newest article expected first, got %d", rows[0].ArticleID)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.After(rows[i-1].CreatedAt) {
			t.Fatalf("not sorted by created_at desc at %d", i)
		}
	}
	for _, a := range rows {
		if a.Body != nil {
			t.Fatalf("summaries must not carry a body")
		}
		if a.ArticleID == 1 && a.CommentCount != 11 {
			t.Fatalf("article 1 comment_count = %d", a.CommentCount)
		}
	}
}

func TestListArticles_OrderAndSort(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	asc := listArticles(t, r, "?order=asc")
	if asc[0].ArticleID != 7 || asc[len(asc)-1].ArticleID != 3 {
		t.Fatalf("asc order unexpected: first=%d last=%d", asc[0].ArticleID, asc[len(asc)-1].ArticleID)
	}

	byCount := listArticles(t, r, "?sort_by=comment_count")
	for i := 1; i < len(byCount); i++ {
		if byCount[i].CommentCount > byCount[i-1].CommentCount {
			t.Fatalf("comment_count not numeric desc at %d: %d > %d", i, byCount[i].CommentCount, byCount[i-1].CommentCount)
		}
	}
	if byCount[0].ArticleID != 1 {
		t.Fatalf("article 1 (11 comments) expected first, got %d", byCount[0].ArticleID)
	}

	byVotes := listArticles(t, r, "?sort_by=votes&order=DESC")
	if byVotes[0].Votes != 100 {
		t.Fatalf("highest votes expected first, got %d", byVotes[0].Votes)
	}
}

func TestListArticles_Rejections(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	expectMsg(t, call(r, http.MethodGet, "/api/articles?sort_by=body", ""), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodGet, "/api/articles?sort_by=votes%3BDROP%20TABLE%20articles", ""), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodGet, "/api/articles?order=sideways", ""), http.StatusBadRequest, "Bad request")

	// Existing topic without articles and unknown topic answer alike.
	expectMsg(t, call(r, http.MethodGet, "/api/articles?topic=paper", ""), http.StatusNotFound, "Not found")
	expectMsg(t, call(r, http.MethodGet, "/api/articles?topic=dogs", ""), http.StatusNotFound, "Not found")

	// The table survived.
	if got := listArticles(t, r, ""); len(got) != 13 {
		t.Fatalf("articles lost: %d", len(got))
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	cats := listArticles(t, r, "?topic=cats")
	if len(cats) != 1 || cats[0].ArticleID != 5 || cats[0].Topic != "cats" {
		t.Fatalf("cats: %+v", cats)
	}
	mitch := listArticles(t, r, "?topic=mitch&sort_by=votes")
	if len(mitch) != 12 || mitch[0].ArticleID != 1 {
		t.Fatalf("mitch: len=%d first=%d", len(mitch), mitch[0].ArticleID)
	}
}

// --- GET /api/articles/:article_id ---

func TestGetArticle(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := call(r, http.MethodGet, "/api/articles/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Article struct {
			ArticleID int    `json:"article_id"`
			Title     string `json:"title"`
			Body      string `json:"body"`
			Votes     int    `json:"votes"`
		} `json:"article"`
	}
	decodeInto(t, w, &body)
	if body.Article.ArticleID != 1 || body.Article.Votes != 100 || body.Article.Body == "" {
		t.Fatalf("unexpected article: %+v", body.Article)
	}

	expectMsg(t, call(r, http.MethodGet, "/api/articles/9999", ""), http.StatusNotFound, "Not found")
	expectMsg(t, call(r, http.MethodGet, "/api/articles/0", ""), http.StatusNotFound, "Not found")
}

func TestNonNumericIDs_BadRequest(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/articles/cats", ""},
		{http.MethodGet, "/api/articles/1.5", ""},
		{http.MethodPatch, "/api/articles/cats", `{"inc_votes":1}`},
		{http.MethodGet, "/api/articles/cats/comments", ""},
		{http.MethodPost, "/api/articles/cats/comments", `{"username":"butter_bridge","body":"x"}`},
		{http.MethodDelete, "/api/comments/three", ""},
	} {
		expectMsg(t, call(r, tc.method, tc.path, tc.body), http.StatusBadRequest, "Bad request")
	}
}

// --- PATCH /api/articles/:article_id ---

func TestPatchArticle(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := call(r, http.MethodPatch, "/api/articles/3", `{"inc_votes":100}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		UpdatedArticle articleRow `json:"updatedArticle"`
	}
	decodeInto(t, w, &body)
	if body.UpdatedArticle.ArticleID != 3 || body.UpdatedArticle.Votes != 100 {
		t.Fatalf("unexpected: %+v", body.UpdatedArticle)
	}

	w = call(r, http.MethodPatch, "/api/articles/3", `{"inc_votes":-30}`)
	decodeInto(t, w, &body)
	if body.UpdatedArticle.Votes != 70 {
		t.Fatalf("votes = %d; want 70", body.UpdatedArticle.Votes)
	}

	expectMsg(t, call(r, http.MethodPatch, "/api/articles/3", `{"inc_votes":"cats"}`), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodPatch, "/api/articles/3", `{}`), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodPatch, "/api/articles/9999", `{"inc_votes":1}`), http.StatusNotFound, "Not found")
	expectMsg(t, call(r, http.MethodPatch, "/api/articles/3", `{"inc_votes":9223372036854775807}`), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodPatch, "/api/articles/3", `{"inc_votes":-2147483649}`), http.StatusBadRequest, "Bad request")

	// Rejected updates left the value alone.
	w = call(r, http.MethodGet, "/api/articles/3", "")
	var got struct {
		Article articleRow `json:"article"`
	}
	decodeInto(t, w, &got)
	if got.Article.Votes != 70 {
		t.Fatalf("votes = %d after rejected updates; want 70", got.Article.Votes)
	}
	if w := call(r, http.MethodGet, "/api/articles", ""); w.Code != http.StatusOK {
		t.Fatalf("listing after rejected updates = %d", w.Code)
	}
}

// --- GET /api/articles/:article_id/comments ---

func TestListComments(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := call(r, http.MethodGet, "/api/articles/1/comments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Comments []commentRow `json:"comments"`
	}
	decodeInto(t, w, &body)
	if len(body.Comments) != 11 {
		t.Fatalf("len = %d; want 11", len(body.Comments))
	}
	for i := 1; i < len(body.Comments); i++ {
		if body.Comments[i].CreatedAt.After(body.Comments[i-1].CreatedAt) {
			t.Fatalf("comments not newest first at %d", i)
		}
	}

	expectMsg(t, call(r, http.MethodGet, "/api/articles/4/comments", ""), http.StatusOK, "No content")
	expectMsg(t, call(r, http.MethodGet, "/api/articles/9999/comments", ""), http.StatusNotFound, "Not found")
}

// --- POST /api/articles/:article_id/comments ---

func TestPostComment(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	before := time.Now().Add(-time.Second)
	w := call(r, http.MethodPost, "/api/articles/4/comments",
		`{"username":"butter_bridge","body":"Great read","votes":-1000,"nonsense":"x"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		PostedComment map[string]any `json:"postedComment"`
	}
	decodeInto(t, w, &body)
	pc := body.PostedComment
	if pc["comment_id"] != float64(19) || pc["votes"] != float64(0) || pc["author"] != "butter_bridge" ||
		pc["body"] != "Great read" || pc["article_id"] != float64(4) {
		t.Fatalf("unexpected posted comment: %v", pc)
	}
	if _, ok := pc["nonsense"]; ok {
		t.Fatalf("extraneous field leaked: %v", pc)
	}
	created, err := time.Parse(time.RFC3339Nano, pc["created_at"].(string))
	if err != nil || created.Before(before) {
		t.Fatalf("created_at not server-set: %v (%v)", pc["created_at"], err)
	}

	// The article now lists it.
	w = call(r, http.MethodGet, "/api/articles/4/comments", "")
	var list struct {
		Comments []commentRow `json:"comments"`
	}
	decodeInto(t, w, &list)
	if len(list.Comments) != 1 || list.Comments[0].Votes != 0 {
		t.Fatalf("stored comment unexpected: %+v", list.Comments)
	}
}

func TestPostComment_Rejections(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	expectMsg(t, call(r, http.MethodPost, "/api/articles/1/comments", `{"username":"butter_bridge"}`), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodPost, "/api/articles/1/comments", `{}`), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodPost, "/api/articles/1/comments", `{"username":1,"body":"x"}`), http.StatusBadRequest, "Bad request")
	expectMsg(t, call(r, http.MethodPost, "/api/articles/9999/comments", `{"username":"butter_bridge","body":"x"}`), http.StatusNotFound, "Not found")
	expectMsg(t, call(r, http.MethodPost, "/api/articles/1/comments", `{"username":"nobody","body":"x"}`), http.StatusNotFound, "Not found")
}

// --- DELETE /api/comments/:comment_id ---

func TestDeleteComment(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := call(r, http.MethodDelete, "/api/comments/3", "")
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("first delete: %d %q", w.Code, w.Body.String())
	}
	expectMsg(t, call(r, http.MethodDelete, "/api/comments/3", ""), http.StatusNotFound, "Not found")
	expectMsg(t, call(r, http.MethodDelete, "/api/comments/9999", ""), http.StatusNotFound, "Not found")
}

// --- store failures ---

func TestClosedStore_InternalError(t *testing.T) {
	r, db := newTestRouter(t, testConfig())

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	expectMsg(t, call(r, http.MethodGet, "/api/topics", ""), http.StatusInternalServerError, "Internal server error")
	expectMsg(t, call(r, http.MethodGet, "/api/articles/1", ""), http.StatusInternalServerError, "Internal server error")
}

// --- helpers ---

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
