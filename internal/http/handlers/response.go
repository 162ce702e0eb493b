// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the success helpers and the binding helper shared by
// all routes. Successful bodies wrap the payload under a resource key,
// e.g. {"article": {...}} or {"comments": [...]}.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/validate"
)

// MsgNoContent is returned in a 200 body when an existing article has no
// comments.
const MsgNoContent = "No content"

// MessageResponse is a 200 body carrying only a sentinel message.
type MessageResponse struct {
	Msg string `json:"msg" example:"No content"`
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// bindJSON decodes the request body into dst. Unknown fields are ignored and
// an empty body decodes as {}. Malformed JSON or a wrongly typed field is a
// validation error.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.BadRequest()
	}
	return nil
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	return validate.ResourceID(c.Param(name))
}
