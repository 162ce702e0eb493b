// Package handlers provides HTTP handler implementations for the public API.
//
// This file is the error normalizer: every failure a handler sees is passed
// to fail(), which runs an ordered chain of stages. Each stage inspects the
// error and either writes the response or defers to the next one:
//
//  1. store:    errors carrying a store code (constraint violation, data
//     exception) answer 400 "Bad request".
//  2. domain:   validation and not-found errors answer with their own status
//     and message.
//  3. fallback: anything else is logged and answers 500 with a fixed
//     message. It never defers.
//
// Response bodies are always {"msg": string}. Store codes, causes and stack
// traces are logged, never returned.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/http/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Msg string `json:"msg" example:"Bad request"`
}

// stage writes a response for err and reports true, or reports false to
// defer to the next stage.
type stage func(c *gin.Context, err error) bool

var normalizer = []stage{storeStage, domainStage, fallbackStage}

// fail aborts the request with the response chosen by the normalizer.
func fail(c *gin.Context, err error) {
	for _, s := range normalizer {
		if s(c, err) {
			return
		}
	}
}

// Fail is the exported variant of fail(), used by the router for
// unmatched routes.
func Fail(c *gin.Context, err error) { fail(c, err) }

func storeStage(c *gin.Context, err error) bool {
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindStore || e.Code == "" {
		return false
	}
	middleware.LoggerFrom(c).Warn().
		Str("store_code", e.Code).
		AnErr("cause", e.Cause).
		Msg("store rejected request")
	abort(c, e.Kind, http.StatusBadRequest, apperr.MsgBadRequest)
	return true
}

func domainStage(c *gin.Context, err error) bool {
	e, ok := apperr.As(err)
	if !ok {
		return false
	}
	switch e.Kind {
	case apperr.KindValidation, apperr.KindNotFound:
		abort(c, e.Kind, e.Status, e.Msg)
		return true
	}
	return false
}

func fallbackStage(c *gin.Context, err error) bool {
	middleware.LoggerFrom(c).Error().
		Err(err).
		Msg("unexpected error")
	abort(c, apperr.KindUnexpected, http.StatusInternalServerError, apperr.MsgInternal)
	return true
}

func abort(c *gin.Context, kind apperr.Kind, status int, msg string) {
	middleware.CountError(kind.String())
	c.AbortWithStatusJSON(status, ErrorResponse{Msg: msg})
}
