// Package domain defines the persistence models for topics, users, articles
// and comments. These types are mapped with GORM and double as the JSON
// shapes returned by the API.
package domain

import "time"

// Topic is a named category applied to articles. Slug is the natural key.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(255);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(255);not null;default:''"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author of articles and comments. Username is the natural key.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(255);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;type:varchar(1000)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a single news item.
//
// Fields:
//   - ArticleID: serial primary key.
//   - Author: username of the writer (FK users.username).
//   - Topic: slug of the topic (FK topics.slug).
//   - Votes: signed counter, only ever changed by an atomic increment. The
//     column is NOT NULL, which is what rejects a missing vote delta.
type Article struct {
	ArticleID     int       `json:"article_id"      gorm:"column:article_id;primaryKey;autoIncrement"`
	Author        string    `json:"author"          gorm:"type:varchar(255);not null;index"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(255);not null;index"`
	CreatedAt     time.Time `json:"created_at"      gorm:"not null"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url;type:varchar(1000)"`

	Writer   User      `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Category Topic     `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Comments []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// ArticleSummary is the collection row for GET /articles: the article
// without its body, plus the number of comments computed at query time.
type ArticleSummary struct {
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	ArticleID     int       `json:"article_id"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int64     `json:"comment_count"`
}

// Comment is a reply attached to an article. Comments are removed together
// with their article.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ArticleID int       `json:"article_id" gorm:"column:article_id;not null;index:idx_article_comments,priority:1"`
	Author    string    `json:"author"     gorm:"type:varchar(255);not null"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:idx_article_comments,priority:2"`

	Writer User `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// All lists the models in dependency order, for migrations and reseeding.
func All() []any {
	return []any{&Topic{}, &User{}, &Article{}, &Comment{}}
}
