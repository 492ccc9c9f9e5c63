package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flashme/cardgenx-backend/controllers"
	"github.com/flashme/cardgenx-backend/middleware"
	"github.com/flashme/cardgenx-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
	}

	// Stateless generation endpoints: the caller supplies the PDF bytes and
	// nothing is persisted.
	api.POST("/generate-flashcards", controllers.GenerateFlashcards)
	api.POST("/generate-summary", controllers.GenerateSummary)

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))

		user.GET("/dashboard", controllers.GetDashboardOverview)

		user.POST("/documents", controllers.UploadDocument)
		user.GET("/documents", controllers.GetDocuments)
		user.GET("/documents/:id", controllers.GetDocumentDetail)
		user.PATCH("/documents/:id", controllers.RenameDocument)
		user.DELETE("/documents/:id", controllers.DeleteDocument)

		user.GET("/documents/:id/content", controllers.GetDocumentContent)
		user.GET("/documents/:id/flashcards", controllers.GetFlashcardsByDocument)
		user.PATCH("/flashcards/:id/star", controllers.ToggleFlashcardStar)
		user.GET("/documents/:id/summary", controllers.GetDocumentSummary)

		user.GET("/documents/:id/note", controllers.GetDocumentNote)
		user.PUT("/documents/:id/note", controllers.SaveDocumentNote)
		user.POST("/documents/:id/chat", controllers.SendChatMessage)
		user.POST("/documents/:id/export", controllers.ExportDocument)

		user.POST("/documents/:id/study", controllers.StartStudySession)
		user.GET("/documents/:id/study", controllers.GetStudySession)
		user.PUT("/documents/:id/study/view", controllers.SetStudyView)
		user.POST("/documents/:id/study/next", controllers.StudyNext)
		user.POST("/documents/:id/study/prev", controllers.StudyPrev)
		user.POST("/documents/:id/study/reveal", controllers.StudyReveal)
		user.POST("/documents/:id/study/shuffle", controllers.StudyShuffle)
		user.POST("/documents/:id/study/reset", controllers.StudyReset)
	}

	r.GET("/ws/document/:id", ws.HandleDocumentWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
