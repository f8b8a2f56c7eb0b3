package handler

import (
	"errors"
	"net/http"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type tokenPayload struct {
	User         interface{} `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// Register handles POST /auth/register — player signup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=2,max=64"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	u, access, refresh, err := h.authSvc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.Err(c, http.StatusConflict, err.Error())
			return
		}
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "registered", tokenPayload{User: u, AccessToken: access, RefreshToken: refresh})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	u, access, refresh, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) || errors.Is(err, service.ErrDeactivated) {
			response.Err(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "logged in", tokenPayload{User: u, AccessToken: access, RefreshToken: refresh})
}

// AdminLogin handles POST /auth/admin/login — same credentials flow, admin
// role required.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	u, access, refresh, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		response.Err(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if u.Role != domain.RoleAdmin {
		response.Err(c, http.StatusForbidden, "admin access required")
		return
	}
	response.OK(c, http.StatusOK, "logged in", tokenPayload{User: u, AccessToken: access, RefreshToken: refresh})
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	access, err := h.authSvc.Refresh(req.RefreshToken)
	if err != nil {
		response.Err(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	response.OK(c, http.StatusOK, "refreshed", gin.H{"access_token": access})
}
