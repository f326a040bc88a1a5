package routes

import (
	"sparkle_shine/internal/adapter/http/handlers"
	"sparkle_shine/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathConversations = "/chat/conversations"
)

// Model-backed endpoints are rate limited per client.
func addChatRoutes(rg *gin.RouterGroup, chat *handlers.ChatHandler, live *handlers.LiveHandler, limiter *middleware.RateLimiter) {
	conversations := rg.Group(PathConversations)
	{
		conversations.POST("", chat.StartConversation)
		conversations.GET("/:conversation_id", chat.GetConversation)
		conversations.POST("/:conversation_id/messages", limiter.Middleware(), chat.SendMessage)
		conversations.GET("/:conversation_id/live", limiter.Middleware(), live.Connect)
	}
}
