package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection so the FK pragma applies to every statement.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	// Enforce FKs so cascades actually execute.
	db.Exec("PRAGMA foreign_keys=ON;")
	return db
}

func TestTableNames(t *testing.T) {
	want := map[string]string{
		(Topic{}).TableName():   "topics",
		(User{}).TableName():    "users",
		(Article{}).TableName(): "articles",
		(Comment{}).TableName(): "comments",
	}
	for got, exp := range want {
		if got != exp {
			t.Fatalf("TableName() = %q; want %q", got, exp)
		}
	}
}

func TestMigrations_ForeignKeys_AndCascade(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()
	for _, tbl := range All() {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Comment{}, "idx_article_comments") {
		t.Fatalf("expected index idx_article_comments on comments")
	}

	if err := db.Create(&Topic{Slug: "mitch", Description: "The man"}).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	if err := db.Create(&User{Username: "butter_bridge", Name: "jonny"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	a := &Article{Author: "butter_bridge", Title: "t", Body: "b", Topic: "mitch", CreatedAt: time.Now().UTC()}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed article: %v", err)
	}
	if a.ArticleID == 0 || a.Votes != 0 {
		t.Fatalf("unexpected article after insert: %+v", a)
	}

	// Unknown topic is rejected by the FK.
	bad := &Article{Author: "butter_bridge", Title: "t", Body: "b", Topic: "nope", CreatedAt: time.Now().UTC()}
	if err := db.Create(bad).Error; err == nil || !strings.Contains(strings.ToLower(err.Error()), "constraint") {
		t.Fatalf("expected FK violation, got %v", err)
	}

	c := &Comment{ArticleID: a.ArticleID, Author: "butter_bridge", Body: "hi", CreatedAt: time.Now().UTC()}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	// The comment side carries the article FK.
	orphan := &Comment{ArticleID: a.ArticleID + 100, Author: "butter_bridge", Body: "lost", CreatedAt: time.Now().UTC()}
	if err := db.Create(orphan).Error; err == nil || !strings.Contains(strings.ToLower(err.Error()), "constraint") {
		t.Fatalf("expected FK violation for unknown article, got %v", err)
	}
	second := &Article{Author: "butter_bridge", Title: "t2", Body: "b2", Topic: "mitch", CreatedAt: time.Now().UTC()}
	if err := db.Create(second).Error; err != nil {
		t.Fatalf("insert after comments exist: %v", err)
	}

	// Deleting the article cascades to its comments.
	if err := db.Delete(&Article{}, a.ArticleID).Error; err != nil {
		t.Fatalf("delete article: %v", err)
	}
	var n int64
	db.Model(&Comment{}).Where("article_id = ?", a.ArticleID).Count(&n)
	if n != 0 {
		t.Fatalf("expected cascade delete of comments, got %d", n)
	}
}

func TestJSONShapes(t *testing.T) {
	a := Article{ArticleID: 3, Author: "icellusedkars", Title: "t", Body: "some gifs", Topic: "mitch", Votes: 100}
	b, _ := json.Marshal(a)
	s := string(b)
	for _, key := range []string{`"article_id":3`, `"votes":100`, `"article_img_url"`, `"created_at"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("article JSON missing %s: %s", key, s)
		}
	}
	if strings.Contains(s, "Writer") || strings.Contains(s, "Category") {
		t.Fatalf("associations must not be serialized: %s", s)
	}

	sum := ArticleSummary{ArticleID: 1, CommentCount: 11}
	b, _ = json.Marshal(sum)
	if !strings.Contains(string(b), `"comment_count":11`) || strings.Contains(string(b), `"body"`) {
		t.Fatalf("summary JSON unexpected: %s", b)
	}

	u := User{Username: "lurker", Name: "do_nothing", AvatarURL: "x"}
	b, _ = json.Marshal(u)
	if !strings.Contains(string(b), `"avatar_url":"x"`) {
		t.Fatalf("user JSON unexpected: %s", b)
	}
}
