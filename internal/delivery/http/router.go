package http

import (
	"time"

	"LearnHub/internal/delivery/http/controllers"
	authctl "LearnHub/internal/delivery/http/controllers/auth"
	coursectl "LearnHub/internal/delivery/http/controllers/course"
	lessonctl "LearnHub/internal/delivery/http/controllers/lesson"
	"LearnHub/internal/delivery/http/controllers/middleware"
	notesctl "LearnHub/internal/delivery/http/controllers/notes"
	"LearnHub/internal/models"
	"LearnHub/internal/service"
	"LearnHub/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	authProvider := middleware.NewAuthMiddlewareProvider(l, u.AuthService)
	authController := authctl.NewAuthHandler(l, u.AuthService)
	queryController := coursectl.NewQueryHandler(l, u.CourseQueryService)
	enrollmentController := coursectl.NewEnrollmentHandler(l, u.EnrollmentService)
	ratingController := coursectl.NewRatingHandler(l, u.RatingService)
	bookmarkController := coursectl.NewBookmarkHandler(l, u.BookmarkService)
	managementController := coursectl.NewManagementHandler(l, u.CourseManagementService)
	progressController := lessonctl.NewProgressHandler(l, u.ProgressService)
	notesController := notesctl.NewNotesHandler(l, u.NotesService)

	v1 := r.Group("/v1", middleware.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		v1.GET("/me", authProvider.AuthMiddleware, authController.Me)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/refresh", authController.Refresh)
		}

		courses := v1.Group("/courses", authProvider.AuthMiddleware)
		{
			client := courses.Group("", middleware.RequireRoles(models.ClientRole, models.AdminRole))
			{
				client.GET("", queryController.ListCourses)
				client.GET("/enrolled", queryController.EnrolledCourses)
				client.GET("/bookmarked", queryController.BookmarkedCourses)
				client.GET("/:course_id", queryController.CourseByID)

				client.POST("/:course_id/enroll", enrollmentController.Enroll)
				client.DELETE("/:course_id/enroll", enrollmentController.Unenroll)

				client.GET("/:course_id/rating", ratingController.CourseRating)
				client.POST("/:course_id/rating", ratingController.RateCourse)
				client.PUT("/:course_id/rating", ratingController.UpdateRating)
				client.DELETE("/:course_id/rating", ratingController.DeleteRating)

				client.POST("/:course_id/bookmark", bookmarkController.ToggleBookmark)
				client.DELETE("/:course_id/bookmark", bookmarkController.RemoveBookmark)

				client.GET("/:course_id/progress", progressController.CourseProgress)
				client.PUT("/:course_id/lessons/:lesson_id/completion", progressController.SetLessonCompletion)

				client.GET("/:course_id/notes", notesController.CourseNotes)
				client.POST("/:course_id/lessons/:lesson_id/notes", notesController.CreateNote)
			}

			admin := courses.Group("", middleware.RequireRoles(models.AdminRole))
			{
				admin.POST("", managementController.CreateCourse)
				admin.PUT("/:course_id", managementController.UpdateCourse)
				admin.DELETE("/:course_id", managementController.DeleteCourse)
				admin.PUT("/:course_id/thumbnail", managementController.UploadThumbnail)
				admin.POST("/:course_id/lessons", managementController.AddLesson)
				admin.DELETE("/:course_id/lessons/:lesson_id", managementController.DeleteLesson)
			}
		}

		authed := v1.Group("", authProvider.AuthMiddleware, middleware.RequireRoles(models.ClientRole, models.AdminRole))
		{
			authed.GET("/progress", progressController.UserProgress)
			authed.GET("/bookmarks", bookmarkController.BookmarkIDs)

			notes := authed.Group("/notes")
			{
				notes.GET("/search", notesController.SearchNotes)
				notes.PUT("/:note_id", notesController.UpdateNote)
				notes.DELETE("/:note_id", notesController.DeleteNote)
			}
		}
	}
	return r
}
