package middleware

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts panics into the generic 500 envelope. Outside
// production the panic value and stack are included in the error details.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v\n%s", err, debug.Stack())
				TrackError("panic")

				body := &utils.ErrorBody{Message: "Internal server error"}
				if os.Getenv("GO_ENV") != "production" {
					body.Details = gin.H{
						"panic": fmt.Sprint(err),
						"stack": string(debug.Stack()),
					}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.Response{
					Success: false,
					Error:   body,
				})
			}
		}()
		c.Next()
	}
}
