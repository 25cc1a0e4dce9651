package controllers

import (
	"net/http"

	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/bind"
	"github.com/bilemo/api/pkg/response"
)

// AuthController issues tokens.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// LoginInput is the credential payload.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login serves POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, herr := c.auth.Login(input.Email, input.Password)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	response.Success(w, map[string]string{"token": token})
}
