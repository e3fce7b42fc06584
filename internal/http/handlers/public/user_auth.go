package public

import (
	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/models"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      *models.User `json:"user"`
}

// Register creates an account and signs the user in.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, token, expiresAt, err := h.AuthService.Register(req.Phone, req.Password, req.FirstName, req.LastName)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, authResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	})
}

// Login checks credentials and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	user, token, expiresAt, err := h.AuthService.Login(req.Phone, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, authResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	})
}

// GetCurrentUser returns the signed-in account.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetUser(userID)
	if err != nil {
		respondError(c, response.CodeNotFound, "error.not_found", err)
		return
	}
	response.Success(c, user)
}
