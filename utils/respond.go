package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API replies with plain-text bodies: status reasons on failure and
// bare values (id, nothing) on success.

// Text writes a plain-text body with the given status.
func Text(ctx *gin.Context, status int, body string) {
	ctx.String(status, "%s", body)
}

// OK replies 200 with an empty body.
func OK(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}

// BadRequest replies 400 with the validation reason.
func BadRequest(ctx *gin.Context, reason string) {
	Text(ctx, http.StatusBadRequest, reason)
}

// NotFoundf replies 404 with a formatted contextual message.
func NotFoundf(ctx *gin.Context, format string, a ...any) {
	Text(ctx, http.StatusNotFound, fmt.Sprintf(format, a...))
}

// Unauthorized replies 401 with no body.
func Unauthorized(ctx *gin.Context) {
	ctx.Status(http.StatusUnauthorized)
}

// InternalError logs the failure and replies 500. Store or disk failures
// must never be silently swallowed.
func InternalError(ctx *gin.Context, op string, err error) {
	if Sugar != nil {
		Sugar.Errorf("%s: %v", op, err)
	}
	ctx.Status(http.StatusInternalServerError)
}
