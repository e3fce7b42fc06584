package public

import (
	handlershared "github.com/kitoblarda/internal/http/handlers/shared"
	"github.com/kitoblarda/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.bad_request", "error.internal")
}

// getSessionID reads the session id planted by the session middleware.
func getSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get("session_id")
	if !exists {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return "", false
	}
	sid, ok := value.(string)
	if !ok || sid == "" {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return "", false
	}
	return sid, true
}
