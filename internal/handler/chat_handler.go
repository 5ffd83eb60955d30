package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dianapq/Back-Asistente/internal/services"
	"github.com/Dianapq/Back-Asistente/internal/transport/httpdto"
	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the completion call and the history listing.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat proxies the prompt to the completion provider and persists the exchange.
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Token inválido o expirado"))
		return
	}

	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Petición inválida"))
		return
	}

	response, err := h.service.Chat(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, asistente_errors.ErrInvalidInput),
			errors.Is(err, asistente_errors.ErrNotConfigured):
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Falta el prompt o no se configuró OpenAI"))
		case errors.Is(err, asistente_errors.ErrUpstream):
			res := httpdto.NewErrorResponse("Error al generar respuesta")
			res.Details = err.Error()
			c.JSON(http.StatusInternalServerError, res)
		default:
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Error al generar respuesta"))
		}
		return
	}

	c.JSON(http.StatusOK, httpdto.ChatResponse{Response: response})
}

// History lists the user's conversations ordered oldest first.
func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Token inválido o expirado"))
		return
	}

	conversations, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Error al recuperar historial"))
		return
	}

	items := make([]httpdto.ConversationDTO, 0, len(conversations))
	for _, conv := range conversations {
		items = append(items, httpdto.ConversationDTO{
			ID:        conv.ID.String(),
			Prompt:    conv.Prompt,
			Response:  conv.Response,
			UserID:    conv.UserID.String(),
			CreatedAt: conv.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, items)
}
