// Package docs registers the OpenAPI document served by gin-swagger.
// Regenerate with: swag init -g cmd/newsapi/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns a document describing every available endpoint.",
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Describe the API",
                "operationId": "getEndpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.EndpointsResponse"}}
                }
            }
        },
        "/topics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Topics"],
                "summary": "List topics",
                "operationId": "listTopics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TopicsResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "operationId": "listUsers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.UsersResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/articles": {
            "get": {
                "description": "Returns article summaries with comment_count. Unknown sort columns or orders are rejected.",
                "produces": ["application/json"],
                "tags": ["Articles"],
                "summary": "List articles",
                "operationId": "listArticles",
                "parameters": [
                    {"type": "string", "description": "Topic slug", "name": "topic", "in": "query"},
                    {"enum": ["article_id", "title", "topic", "author", "created_at", "votes", "article_img_url", "comment_count"], "type": "string", "default": "created_at", "description": "Sort column", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "default": "desc", "description": "Sort order", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ArticlesResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/articles/{article_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Articles"],
                "summary": "Get an article",
                "operationId": "getArticle",
                "parameters": [
                    {"type": "integer", "example": 1, "description": "Article ID", "name": "article_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ArticleResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Adds inc_votes to the article's votes. Unknown body fields are ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Articles"],
                "summary": "Vote on an article",
                "operationId": "patchArticle",
                "parameters": [
                    {"type": "integer", "example": 3, "description": "Article ID", "name": "article_id", "in": "path", "required": true},
                    {"description": "Vote delta", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PatchArticleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.UpdatedArticleResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/articles/{article_id}/comments": {
            "get": {
                "description": "Returns the article's comments, newest first. An existing article without comments answers 200 {\"msg\":\"No content\"}.",
                "produces": ["application/json"],
                "tags": ["Comments"],
                "summary": "List comments of an article",
                "operationId": "listComments",
                "parameters": [
                    {"type": "integer", "example": 1, "description": "Article ID", "name": "article_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CommentsResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a comment by an existing user. Unknown body fields are ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Comments"],
                "summary": "Comment on an article",
                "operationId": "postComment",
                "parameters": [
                    {"type": "integer", "example": 1, "description": "Article ID", "name": "article_id", "in": "path", "required": true},
                    {"description": "New comment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PostCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.PostedCommentResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/comments/{comment_id}": {
            "delete": {
                "tags": ["Comments"],
                "summary": "Delete a comment",
                "operationId": "deleteComment",
                "parameters": [
                    {"type": "integer", "example": 3, "description": "Comment ID", "name": "comment_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Article": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "article_img_url": {"type": "string"},
                "author": {"type": "string"},
                "body": {"type": "string"},
                "created_at": {"type": "string"},
                "title": {"type": "string"},
                "topic": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "domain.ArticleSummary": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "article_img_url": {"type": "string"},
                "author": {"type": "string"},
                "comment_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "title": {"type": "string"},
                "topic": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "article_id": {"type": "integer"},
                "author": {"type": "string"},
                "body": {"type": "string"},
                "comment_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "domain.Topic": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "avatar_url": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.ArticleResponse": {
            "type": "object",
            "properties": {"article": {"$ref": "#/definitions/domain.Article"}}
        },
        "handlers.ArticlesResponse": {
            "type": "object",
            "properties": {"articles": {"type": "array", "items": {"$ref": "#/definitions/domain.ArticleSummary"}}}
        },
        "handlers.CommentsResponse": {
            "type": "object",
            "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}}
        },
        "handlers.EndpointsResponse": {
            "type": "object",
            "properties": {"endpoints": {"type": "object"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string", "example": "Bad request"}}
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string", "example": "No content"}}
        },
        "handlers.PatchArticleRequest": {
            "type": "object",
            "properties": {"inc_votes": {"type": "integer", "example": 100}}
        },
        "handlers.PostCommentRequest": {
            "type": "object",
            "properties": {
                "body": {"type": "string", "example": "This morning, I showered for nine minutes."},
                "username": {"type": "string", "example": "butter_bridge"}
            }
        },
        "handlers.PostedCommentResponse": {
            "type": "object",
            "properties": {"postedComment": {"$ref": "#/definitions/domain.Comment"}}
        },
        "handlers.TopicsResponse": {
            "type": "object",
            "properties": {"topics": {"type": "array", "items": {"$ref": "#/definitions/domain.Topic"}}}
        },
        "handlers.UpdatedArticleResponse": {
            "type": "object",
            "properties": {"updatedArticle": {"$ref": "#/definitions/domain.Article"}}
        },
        "handlers.UsersResponse": {
            "type": "object",
            "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "News API",
	Description:      "Read articles, topics and users; vote on articles; post and delete comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
