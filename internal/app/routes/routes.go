package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jdelaney/ratemyclass/internal/app/controllers"
	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	courseController *controllers.CourseController,
	ratingController *controllers.RatingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public School routes ---
	schools := router.Group("/schools")
	{
		schools.GET("", schoolController.GetAllSchools)
		schools.GET("/:school_id/courses", schoolController.GetSchoolCourses)
	}

	// --- Course routes ---
	courses := router.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:course_id", courseController.GetCourse)
		courses.GET("/:course_id/detail", courseController.GetCourseDetail)

		// Course creation is restricted to admins
		coursesAdminProtected := courses.Group("")
		coursesAdminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			coursesAdminProtected.POST("", courseController.CreateCourse)
		}
	}

	// --- Public Rating routes ---
	ratings := router.Group("/ratings")
	{
		ratings.POST("", ratingController.CreateRating)
	}

	// Health check endpoint (public)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
