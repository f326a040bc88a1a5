package handlers

import (
	"errors"
	"net/http"
	request "sparkle_shine/internal/adapter/http/dto/request"
	response "sparkle_shine/internal/adapter/http/dto/response"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"
	"sparkle_shine/pkg"

	"github.com/gin-gonic/gin"
)

const paramConversationID = "conversation_id"

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)
)

// ChatHandler is the text mode of the assistant.

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// StartConversation godoc
// @Summary      Start a conversation with Bubbles
// @Tags         chat
// @Produce      json
// @Success      201  {object}  response.ConversationResponse
// @Router       /chat/conversations [post]
func (h *ChatHandler) StartConversation(c *gin.Context) {
	conv, err := h.usecase.StartConversation(c.Request.Context())
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromConversation(conv))
}

// GetConversation godoc
// @Summary      Conversation transcript
// @Tags         chat
// @Produce      json
// @Param        conversation_id  path      string  true  "Conversation ID"
// @Success      200              {object}  response.ConversationResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /chat/conversations/{conversation_id} [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	conv, err := h.usecase.GetConversation(c.Request.Context(), c.Param(paramConversationID))
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConversation(conv))
}

// SendMessage godoc
// @Summary      Send a text turn
// @Description  Assistant failures are answered with a friendly fallback message, never an error.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        conversation_id  path      string                      true  "Conversation ID"
// @Param        body             body      request.SendMessageRequest  true  "Message"
// @Success      200              {object}  response.ConversationResponse
// @Failure      400              {object}  pkg.HTTPError
// @Failure      409              {object}  pkg.HTTPError
// @Failure      429              {object}  pkg.HTTPError
// @Router       /chat/conversations/{conversation_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	conv, err := h.usecase.SendMessage(c.Request.Context(), c.Param(paramConversationID), payload.Text)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConversation(conv))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("EMPTY_MESSAGE", "Message cannot be empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConversationNotFound):
		return pkg.NewDomainErrorSimple("CONVERSATION_NOT_FOUND", "Conversation not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAwaitingResponse):
		return pkg.NewDomainErrorSimple("AWAITING_RESPONSE", "Bubbles is still answering", http.StatusConflict)
	case errors.Is(err, entities.ErrLiveSessionActive):
		return pkg.NewDomainErrorSimple("LIVE_SESSION_ACTIVE", "A voice session is active", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
