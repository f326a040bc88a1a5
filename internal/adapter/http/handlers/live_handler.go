package handlers

import (
	"net/http"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// LiveHandler upgrades to a websocket and relays a voice session for an
// existing conversation.
type LiveHandler struct {
	chat     usecase.IChatUseCase
	live     usecase.ILiveSessionUseCase
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

func NewLiveHandler(chat usecase.IChatUseCase, live usecase.ILiveSessionUseCase, allowedOrigins []string, log *zap.SugaredLogger) *LiveHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LiveHandler{
		chat: chat,
		live: live,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 << 10,
			WriteBufferSize: 16 << 10,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		log: log,
	}
}

// Connect godoc
// @Summary      Voice session (websocket)
// @Description  Upgrades to a websocket carrying JSON audio frames in both directions.
// @Tags         chat
// @Param        conversation_id  path  string  true  "Conversation ID"
// @Success      101
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /chat/conversations/{conversation_id}/live [get]
func (h *LiveHandler) Connect(c *gin.Context) {
	id := c.Param(paramConversationID)

	// Reject before upgrading so the browser gets a plain JSON error.
	conv, err := h.chat.GetConversation(c.Request.Context(), id)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if conv.Live {
		appErr := mapChatError(entities.ErrLiveSessionActive)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("[live][handler] upgrade failed", "conversation_id", id, "error", err)
		return
	}
	client := newWebsocketLiveClient(conn)
	defer client.Close()

	h.log.Infow("[live][handler] voice session opened", "conversation_id", id, "remote", c.ClientIP())
	if err := h.live.Run(c.Request.Context(), id, client); err != nil {
		h.log.Warnw("[live][handler] voice session ended with error", "conversation_id", id, "error", err)
		return
	}
	h.log.Infow("[live][handler] voice session closed", "conversation_id", id)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || lo.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || lo.Contains(allowed, origin)
	}
}
