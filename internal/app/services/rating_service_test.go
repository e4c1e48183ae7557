package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

func TestCreateRating_Success(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	course := stores.addCourse(school.ID, "Ethics", "PHIL 200", "Philosophy", "In-Person")

	svc := NewRatingService(stores, zerolog.Nop())

	rating, err := svc.CreateRating(context.Background(), &dto.CreateRatingRequest{
		CourseID: course.ID,
		Rating:   4,
		Review:   "Thought provoking discussions.",
		Textbook: strPtr("Nicomachean Ethics"),
	})
	require.NoError(t, err)

	assert.NotZero(t, rating.ID)
	assert.Equal(t, course.ID, rating.CourseID)
	assert.Equal(t, 4, rating.Rating)
	require.NotNil(t, rating.BookID)
	assert.NotZero(t, rating.ProfessorID)
	assert.Len(t, stores.ratings, 1)
}

func TestCreateRating_CourseNotFound(t *testing.T) {
	stores := newFakeStores()
	svc := NewRatingService(stores, zerolog.Nop())

	_, err := svc.CreateRating(context.Background(), &dto.CreateRatingRequest{
		CourseID: 999,
		Rating:   3,
		Review:   "Phantom course.",
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	// Nothing persisted from the aborted transaction
	assert.Empty(t, stores.ratings)
	assert.Empty(t, stores.books)
}

func TestCreateRating_OutOfRange(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	course := stores.addCourse(school.ID, "Logic", "PHIL 210", "Philosophy", "In-Person")

	svc := NewRatingService(stores, zerolog.Nop())

	for _, score := range []int{0, 6, -1} {
		_, err := svc.CreateRating(context.Background(), &dto.CreateRatingRequest{
			CourseID: course.ID,
			Rating:   score,
			Review:   "out of range",
		})
		assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange, "score %d", score)
	}
	assert.Empty(t, stores.ratings)
}

func TestCreateRating_SameTextbookReused(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	course := stores.addCourse(school.ID, "Calculus I", "MATH 198", "Mathematics", "In-Person")

	svc := NewRatingService(stores, zerolog.Nop())

	for i := 0; i < 2; i++ {
		_, err := svc.CreateRating(context.Background(), &dto.CreateRatingRequest{
			CourseID: course.ID,
			Rating:   5,
			Review:   "Stewart is dense but complete.",
			Textbook: strPtr("978-1285740621"),
		})
		require.NoError(t, err)
	}

	assert.Len(t, stores.ratings, 2)
	assert.Len(t, stores.books, 1)
}

func TestCreateRating_WithoutTextbook(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	course := stores.addCourse(school.ID, "Public Speaking", "COMM 100", "Communication", "In-Person")

	svc := NewRatingService(stores, zerolog.Nop())

	rating, err := svc.CreateRating(context.Background(), &dto.CreateRatingRequest{
		CourseID: course.ID,
		Rating:   2,
		Review:   "No textbook, lots of speeches.",
	})
	require.NoError(t, err)

	assert.Nil(t, rating.BookID)
	assert.Empty(t, stores.books)
}
