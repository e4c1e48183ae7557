package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

// RatingService handles rating submissions
type RatingService interface {
	CreateRating(ctx context.Context, req *dto.CreateRatingRequest) (*models.Rating, error)
}

type ratingService struct {
	stores Stores
	logger zerolog.Logger
}

// NewRatingService creates a new rating service instance
func NewRatingService(stores Stores, logger zerolog.Logger) RatingService {
	return &ratingService{
		stores: stores,
		logger: logger,
	}
}

// CreateRating inserts a rating against an existing course, resolving the
// optional textbook and the sentinel professor in the same transaction. An
// unknown course surfaces as NotFound and persists nothing.
func (s *ratingService) CreateRating(ctx context.Context, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, apperrors.ErrRatingOutOfRange
	}

	var rating *models.Rating

	err := s.stores.InTransaction(ctx, func(ctx context.Context, tx Stores) error {
		if _, err := tx.Courses().GetByID(ctx, req.CourseID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error checking course: %w", err)
		}

		textbook := ""
		if req.Textbook != nil {
			textbook = *req.Textbook
		}

		book, err := tx.Books().GetOrCreate(ctx, textbook)
		if err != nil {
			return fmt.Errorf("error resolving textbook: %w", err)
		}

		professor, err := tx.Professors().GetOrCreateDefault(ctx)
		if err != nil {
			return fmt.Errorf("error resolving default professor: %w", err)
		}

		rating = &models.Rating{
			CourseID:    req.CourseID,
			ProfessorID: professor.ID,
			Rating:      req.Rating,
			Review:      req.Review,
		}
		if book != nil {
			rating.BookID = &book.ID
		}

		if err := tx.Ratings().Create(ctx, rating); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error creating rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("ratingID", rating.ID).
		Int64("courseID", rating.CourseID).
		Int("rating", rating.Rating).
		Msg("Rating created")

	return rating, nil
}
