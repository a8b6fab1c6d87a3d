package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Use installs the common middleware chain on router
func Use(router *gin.Engine, allowOrigins []string, lgr zerolog.Logger) {
	router.Use(
		gin.Recovery(),
		RequestID(),
		RequestLogger(lgr),
		CORS(allowOrigins),
	)
}
