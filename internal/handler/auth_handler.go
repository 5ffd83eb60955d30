// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/Dianapq/Back-Asistente/internal/services"
	"github.com/Dianapq/Back-Asistente/internal/transport/httpdto"
	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Petición inválida"))
		return
	}

	res, err := h.service.Register(c.Request.Context(), services.CredentialsInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, asistente_errors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("El usuario ya existe"))
		case errors.Is(err, asistente_errors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Usuario y contraseña son requeridos"))
		default:
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Error al registrar usuario"))
		}
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(res))
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Petición inválida"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.CredentialsInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, asistente_errors.ErrUnauthorized),
			errors.Is(err, asistente_errors.ErrInvalidInput):
			// Same body whether the user is missing or the password is wrong.
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Credenciales inválidas"))
		default:
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Error al iniciar sesión"))
		}
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(res))
}

func toAuthResponse(res services.AuthResponse) httpdto.AuthResponse {
	return httpdto.AuthResponse{
		Token: res.Token,
		User: httpdto.UserDTO{
			ID:       res.User.ID,
			Username: res.User.Username,
		},
	}
}
