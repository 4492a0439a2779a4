package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/singleblog/singleblog/utils"
)

// cacheRenderedJSON marshals v once, stores the bytes in the response
// cache under key, and writes them as the reply body.
func cacheRenderedJSON(ctx *gin.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		utils.InternalError(ctx, "encode response", err)
		return
	}
	utils.CacheSetBytes(key, b, time.Hour)
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
}
