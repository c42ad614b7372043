package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	profile "fishmarket/internal/profileService"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type AuthServiceInterface interface {
	Register(in profile.RegisterInput) (model.Profile, string, error)
	Login(email, password string) (model.Profile, string, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	p, token, err := h.service.Register(profile.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     model.Role(req.Role),
		Phone:    req.Phone,
		City:     req.City,
		State:    req.State,
	})
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	resp := helpers.AuthResponse{
		Token:     token,
		ProfileID: p.ID,
		FullName:  p.FullName,
		Role:      string(p.Role),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "registered successfully")
	helpers.LogSuccess("RegisterHandler", "registered successfully", map[string]any{
		"profile_id": p.ID,
		"role":       p.Role,
	})
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	p, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	resp := helpers.AuthResponse{
		Token:     token,
		ProfileID: p.ID,
		FullName:  p.FullName,
		Role:      string(p.Role),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"profile_id": p.ID})
}
