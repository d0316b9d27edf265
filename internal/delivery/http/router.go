package http

import (
	"EasyToLearn/internal/delivery/http/controllers"
	"EasyToLearn/internal/delivery/http/controllers/middleware"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service"
	"EasyToLearn/pkg/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, allowOrigins []string, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	var socialProvider controllers.SocialProvider
	if u.Social != nil {
		socialProvider = u.Social
	}

	authProvider := middleware.NewAuthMiddlewareProvider(l, u.JWT)
	statusController := controllers.NewStatusHandler()
	authController := controllers.NewAuthHandler(l, u.Sessions, u.JWT, socialProvider)
	blogController := controllers.NewBlogHandler(l, u.Content)
	quizController := controllers.NewQuizHandler(l, u.Content)
	contentController := controllers.NewContentHandler(l, u.Content, u.Sessions, u.Uploads)
	notesController := controllers.NewNotesHandler(l, u.Content, u.Uploads)
	dashboardController := controllers.NewDashboardHandler(u.Sessions, u.Content, u.Content, u.Content)

	// Role sets for the gate. A public page lists every role plus the guest
	// sentinel; membership is exact, so guest alone would lock out
	// signed-in users.
	public := []string{models.GuestRole, models.AdminRole, models.InstructorRole, models.ClientRole}
	authenticated := []string{models.AdminRole, models.InstructorRole, models.ClientRole}
	managers := []string{models.AdminRole, models.InstructorRole}

	v1 := r.Group("/v1", middleware.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		auth := v1.Group("/auth")
		{
			auth.GET("/me", authProvider.AuthMiddleware, authController.Me)
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/logout", authController.Logout)
			auth.GET("/social/google", authController.GoogleLogin)
			auth.GET("/social/google/callback", authController.GoogleCallback)
		}

		blog := v1.Group("/blog")
		{
			blog.GET("", middleware.Gate(u.Sessions, public...), blogController.ListPosts)
			blog.GET("/:post_id", middleware.Gate(u.Sessions, public...), blogController.PostByID)

			author := blog.Group("", middleware.Gate(u.Sessions, authenticated...))
			{
				author.POST("", blogController.CreatePost)
				author.PATCH("/:post_id", blogController.UpdatePost)
				author.DELETE("/:post_id", blogController.DeletePost)
			}
		}

		quiz := v1.Group("/quiz", middleware.Gate(u.Sessions, public...))
		{
			quiz.GET("/questions", quizController.ListQuestions)
			quiz.POST("/start", quizController.Start)
			quiz.GET("/state", quizController.State)
			quiz.POST("/answer", quizController.Answer)
			quiz.POST("/next", quizController.Next)
			quiz.POST("/previous", quizController.Previous)
			quiz.POST("/submit", quizController.Submit)
			quiz.POST("/retry", quizController.Retry)
			quiz.POST("/review", quizController.ToggleReview)
		}
		v1.GET("/quiz/attempts", authProvider.AuthMiddleware, quizController.MyAttempts)

		notes := v1.Group("/notes")
		{
			notes.GET("", middleware.Gate(u.Sessions, public...), notesController.ListNotes)
			notes.GET("/:note_id", middleware.Gate(u.Sessions, public...), notesController.NoteByID)

			manage := notes.Group("", middleware.Gate(u.Sessions, managers...))
			{
				manage.POST("", notesController.CreateNote)
				manage.PATCH("/:note_id", notesController.UpdateNote)
				manage.DELETE("/:note_id", notesController.DeleteNote)
			}
		}

		contentGroup := v1.Group("/content")
		{
			contentGroup.GET("", middleware.Gate(u.Sessions, public...), contentController.ListContent)
			contentGroup.GET("/:content_id", middleware.Gate(u.Sessions, public...), contentController.ContentByID)

			uploader := contentGroup.Group("", middleware.Gate(u.Sessions, authenticated...))
			{
				uploader.POST("", contentController.CreateContent)
				uploader.PATCH("/:content_id", contentController.UpdateContent)
				uploader.DELETE("/:content_id", contentController.DeleteContent)
			}
		}

		v1.POST("/uploads", middleware.Gate(u.Sessions, authenticated...), contentController.UploadFile)

		dashboard := v1.Group("/dashboard", middleware.Gate(u.Sessions, authenticated...))
		{
			dashboard.GET("", dashboardController.Overview)

			admin := dashboard.Group("/quiz-admin", middleware.Gate(u.Sessions, models.AdminRole))
			{
				admin.GET("/questions", quizController.ListQuestions)
				admin.POST("/questions", quizController.CreateQuestion)
				admin.PATCH("/questions/:question_id", quizController.UpdateQuestion)
				admin.DELETE("/questions/:question_id", quizController.DeleteQuestion)
				admin.DELETE("/questions/:question_id/options/:option_index", quizController.RemoveOption)
			}
		}
	}
	return r
}
