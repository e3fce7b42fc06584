package staff

import (
	handlershared "github.com/kitoblarda/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getActorID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.bad_request", "error.internal")
}
