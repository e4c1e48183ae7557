package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/services"
	"github.com/jdelaney/ratemyclass/internal/middleware"
)

// SchoolController handles school-related operations
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// GetAllSchools retrieves all schools
// @Summary List schools
// @Description Retrieves all schools ordered by name
// @Tags schools
// @Accept json
// @Produce json
// @Success 200 {array} dto.SchoolResponse "Schools retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [get]
func (c *SchoolController) GetAllSchools(ctx *gin.Context) {
	schools, err := c.schoolService.GetAllSchools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSchoolListResponse(schools))
}

// GetSchoolCourses retrieves all courses belonging to a school
// @Summary List school courses
// @Description Retrieves the courses of a specific school ordered by course number
// @Tags schools
// @Accept json
// @Produce json
// @Param school_id path int true "School ID"
// @Success 200 {array} dto.CourseListItem "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{school_id}/courses [get]
func (c *SchoolController) GetSchoolCourses(ctx *gin.Context) {
	idStr := ctx.Param("school_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID")
		errorDetail = errorDetail.WithDetails("School ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.schoolService.GetSchoolCourses(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.CourseListItem, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.NewCourseListItem(course))
	}
	ctx.JSON(http.StatusOK, out)
}
