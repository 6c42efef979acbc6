package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/http/middleware"
)

// ChatStreamPathPattern matches the streaming chat endpoint. Response
// compression must skip it so events reach the client as they are flushed.
const ChatStreamPathPattern = `/chat/conversations/[^/]+/messages$`

// Register mounts every endpoint on g. Authentication must already have run
// (middleware.Authenticate) so per-route guards can see the caller.
func (h *Handlers) Register(g *gin.RouterGroup) {
	// Account
	g.POST("/auth/signup", h.Signup)
	g.POST("/auth/login", h.Login)
	g.POST("/auth/logout", h.Logout)

	// Public reads
	g.GET("/assessment/questions", h.Questionnaire)
	g.GET("/forum/posts", h.ListPosts)
	g.GET("/forum/posts/:id", h.GetPost)
	g.GET("/resources/videos", h.ListVideos)
	g.GET("/resources/sounds", h.ListSounds)
	g.GET("/i18n/locales", h.ListLocales)
	g.GET("/i18n/translations/:locale/*key", h.Translate)

	// Chat is open to signed-out users; their conversations are not logged.
	g.POST("/chat/conversations", h.BeginConversation)
	g.GET("/chat/conversations/:id", h.GetConversation)
	g.DELETE("/chat/conversations/:id", h.CloseConversation)
	g.POST("/chat/conversations/:id/messages", h.SendChatMessage)

	user := g.Group("", middleware.RequireUser())
	{
		user.GET("/me", h.Me)
		user.GET("/dashboard", h.GetDashboard)

		user.GET("/journal", h.ListJournal)
		user.POST("/journal", h.AddJournalEntry)

		user.GET("/challenges", h.ChallengeHistory)
		user.GET("/challenges/today", h.TodayChallenge)
		user.POST("/challenges/:id/toggle", h.ToggleChallenge)

		user.GET("/assessment/results", h.AssessmentHistory)
		user.POST("/assessment/results", h.SubmitAssessment)

		user.POST("/forum/posts", h.CreatePost)
		user.DELETE("/forum/posts/:id", h.DeletePost)
		user.POST("/forum/posts/:id/comments", h.AddComment)
		user.DELETE("/forum/posts/:id/comments/:commentId", h.DeleteComment)
	}

	admin := g.Group("", middleware.RequireAdmin())
	{
		admin.POST("/resources/videos", h.AddVideo)
		admin.DELETE("/resources/videos/:id", h.DeleteVideo)
		admin.POST("/resources/sounds", h.AddSound)
		admin.DELETE("/resources/sounds/:id", h.DeleteSound)

		admin.GET("/admin/knowledge", h.ListKnowledge)
		admin.POST("/admin/knowledge", h.AddKnowledge)
		admin.POST("/admin/knowledge/import", h.ImportKnowledge)
		admin.DELETE("/admin/knowledge/:id", h.DeleteKnowledge)

		admin.GET("/admin/users", h.ListUsers)
		admin.DELETE("/admin/users/:email", h.DeleteUser)
		admin.GET("/admin/chat-sessions", h.ListChatSessions)
	}
}
