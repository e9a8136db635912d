package handler

import (
	"net/http"

	"go-gin-event-program/internal/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	verifier auth.CredentialVerifier
	tokens   auth.TokenManager
}

func NewAuthHandler(verifier auth.CredentialVerifier, tokens auth.TokenManager) *AuthHandler {
	return &AuthHandler{verifier: verifier, tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("admin/login", h.Login)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  *auth.Principal `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	principal, err := h.verifier.Verify(c, req.Username, req.Password)
	if err != nil {
		handleError(c, err, "Login")
		return
	}

	token, err := h.tokens.Issue(principal)
	if err != nil {
		handleError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: principal})
}
