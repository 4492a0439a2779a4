package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/singleblog/singleblog/utils"
)

// AdminRoleTokenHeader carries the shared admin secret on destructive requests.
const AdminRoleTokenHeader = "AdminRoleToken"

// AdminRequired rejects requests whose AdminRoleToken header does not match
// the configured token. Runs before the handler, so authorization is always
// checked before resource existence.
func AdminRequired(adminRoleToken string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader(AdminRoleTokenHeader) != adminRoleToken {
			utils.Unauthorized(ctx)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
