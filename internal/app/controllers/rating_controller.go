package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/services"
	"github.com/jdelaney/ratemyclass/internal/middleware"
)

// RatingController handles rating submission
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// CreateRating submits a rating for an existing course
// @Summary Submit a rating
// @Description Stores a rating and review for an existing course, resolving the textbook reference as ISBN or title
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body dto.CreateRatingRequest true "Rating information"
// @Success 201 {object} dto.RatingResponse "Rating created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 422 {object} dto.ErrorResponse "Rating out of range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rating, err := c.ratingService.CreateRating(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewRatingResponse(rating))
}
