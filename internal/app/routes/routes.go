package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/classforum/classforum/internal/app/controllers"
	"github.com/classforum/classforum/internal/middleware"
)

// SetupRouter configures all application routes. The paths mirror the
// page and form URLs the frontend already uses, so the backend can be
// swapped in without touching client-side routing.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	homeworkController *controllers.HomeworkController,
	chatController *controllers.ChatController,
	messageController *controllers.MessageController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)
	router.POST("/refresh", authController.RefreshToken)

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/logout", authController.Logout)
		authenticated.GET("/profile", userController.GetProfile)
		authenticated.POST("/update_theme", userController.UpdateTheme)

		// News feed and info board
		authenticated.GET("/forum", postController.GetForum)
		authenticated.GET("/info", postController.GetInfo)
		authenticated.POST("/suggest_news", postController.SuggestNews)

		// Homework board
		authenticated.GET("/homework", homeworkController.GetHomework)

		// Group chat; GET serves both the page load and the
		// check_new polling mode
		authenticated.GET("/chat", chatController.GetChat)
		authenticated.POST("/send_chat", chatController.SendChat)

		// Direct messages
		authenticated.GET("/messages", messageController.GetMessagesPage)
		authenticated.POST("/send_message", messageController.SendMessage)
		authenticated.GET("/get_messages/:user_id", messageController.GetConversation)

		// Admin-only routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/admin", adminController.GetDashboard)
			admin.POST("/add_news", postController.AddNews)
			admin.POST("/add_info", postController.AddInfo)
			admin.POST("/add_homework", homeworkController.AddHomework)
			admin.POST("/publish_post/:id", postController.PublishPost)
			admin.POST("/delete_post/:id", postController.DeletePost)
			admin.POST("/ban_user/:id", adminController.BanUser)
			admin.POST("/unban_user/:id", adminController.UnbanUser)
		}
	}
}
