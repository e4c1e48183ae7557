package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/app/services"
	"github.com/jdelaney/ratemyclass/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles admin course creation
// @Summary Create a new course
// @Description Creates a course under the named school, creating the school if needed, and attaches an initial rating when a review is supplied
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// ListCourses retrieves courses with aggregate rating stats
// @Summary List courses
// @Description Retrieves all courses with their average rating and rating count, optionally filtered
// @Tags courses
// @Accept json
// @Produce json
// @Param search query string false "Match against course name, number, major, dialogues requirement or delivery mode"
// @Param major query string false "Filter by major"
// @Param delivery_mode query string false "Filter by delivery mode"
// @Param school_id query int false "Filter by school ID"
// @Success 200 {array} dto.CourseWithRatings "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var query dto.CourseFilter
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	filter := repositories.CourseFilter{
		Search:       query.Search,
		Major:        query.Major,
		DeliveryMode: query.DeliveryMode,
		SchoolID:     query.SchoolID,
	}

	courses, err := c.courseService.ListCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.CourseWithRatings, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.NewCourseWithRatings(course))
	}
	ctx.JSON(http.StatusOK, out)
}

// GetCourse retrieves a single course with aggregate rating stats
// @Summary Get course by ID
// @Description Retrieves a specific course with its average rating and rating count
// @Tags courses
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseWithRatings "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseWithRatings(course))
}

// GetCourseDetail retrieves a course with its full rating list
// @Summary Get course detail
// @Description Retrieves a course with aggregate stats and every rating, newest first
// @Tags courses
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse "Course detail retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id}/detail [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	detail, err := c.courseService.GetCourseDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseDetailResponse(detail))
}

func parseCourseID(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("course_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
