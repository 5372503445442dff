package controllers

import (
	"github.com/dpramana/apotek/app/services"
	"github.com/dpramana/apotek/pkg/ctx"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (ctl *AuthController) Login(c *ctx.Context) {
	var body loginRequest
	if !c.BindJSON(&body) {
		return
	}

	token, user, err := ctl.service.Login(body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Success(map[string]any{
		"token": token,
		"user": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
