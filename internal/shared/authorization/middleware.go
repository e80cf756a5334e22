package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireSuperuser guards endpoints reserved for superuser accounts,
// such as master list administration.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextKeySuperuser) {
			c.JSON(403, gin.H{
				"error": "superuser access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
