package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/db"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
	"github.com/jdelaney/ratemyclass/internal/pkg/dberrors"
)

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db db.Querier
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(q db.Querier) *RatingRepository {
	return &RatingRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RatingRepository) WithTx(tx pgx.Tx) *RatingRepository {
	return &RatingRepository{db: tx}
}

// Create inserts a rating. The store enforces the 1..5 range with a check
// constraint and course existence with a foreign key; both surface as
// typed errors here.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO rating (course_id, professor_id, book_id, rating, review)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING rating_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		rating.CourseID, rating.ProfessorID, rating.BookID, rating.Rating, rating.Review).
		Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		if dberrors.IsCheckViolationError(err) {
			return apperrors.ErrRatingOutOfRange
		}
		if dberrors.IsForeignKeyViolationError(err) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("error creating rating: %w", err)
	}

	return nil
}

// GetByCourseID retrieves all ratings for a course, newest first
func (r *RatingRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Rating, error) {
	query := `
		SELECT rating_id, course_id, professor_id, book_id, rating, review, created_at, updated_at
		FROM rating
		WHERE course_id = $1
		ORDER BY created_at DESC, rating_id DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*models.Rating{}
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.CourseID,
			&rating.ProfessorID,
			&rating.BookID,
			&rating.Rating,
			&rating.Review,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}
