package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func newCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		CourseName:   "Data Structures",
		CourseNumber: "CS 180",
		Major:        "Computer Science",
		SchoolName:   "Truman State University",
		DeliveryMode: "In-Person",
		Rating:       4,
	}
}

func TestCreateCourse_NewSchoolAndCourse(t *testing.T) {
	stores := newFakeStores()
	svc := NewCourseService(stores, zerolog.Nop())

	course, err := svc.CreateCourse(context.Background(), newCourseRequest())
	require.NoError(t, err)
	require.NotNil(t, course)

	assert.NotZero(t, course.ID)
	assert.Equal(t, "CS 180", course.Number)
	assert.Len(t, stores.schools, 1)
	assert.Len(t, stores.courses, 1)
	// No review, so no rating rides along
	assert.Empty(t, stores.ratings)
}

func TestCreateCourse_ReusesExistingCourse(t *testing.T) {
	stores := newFakeStores()
	svc := NewCourseService(stores, zerolog.Nop())

	first, err := svc.CreateCourse(context.Background(), newCourseRequest())
	require.NoError(t, err)

	second, err := svc.CreateCourse(context.Background(), newCourseRequest())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, stores.courses, 1)
	assert.Len(t, stores.schools, 1)
}

func TestCreateCourse_AttachesRatingWithReview(t *testing.T) {
	stores := newFakeStores()
	svc := NewCourseService(stores, zerolog.Nop())

	req := newCourseRequest()
	req.Rating = 5
	req.Review = "Great course, tough exams."
	req.Textbook = strPtr("Introduction to Algorithms")

	course, err := svc.CreateCourse(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, stores.ratings, 1)
	for _, r := range stores.ratings {
		assert.Equal(t, course.ID, r.CourseID)
		assert.Equal(t, 5, r.Rating)
		assert.Equal(t, "Great course, tough exams.", r.Review)
		require.NotNil(t, r.BookID)
		book := stores.books[*r.BookID]
		require.NotNil(t, book)
		require.NotNil(t, book.Title)
		assert.Equal(t, "Introduction to Algorithms", *book.Title)
		assert.Nil(t, book.ISBN)
	}
	// The sentinel professor got created on first use
	assert.Len(t, stores.professors, 1)
}

func TestCreateCourse_TextbookISBN(t *testing.T) {
	stores := newFakeStores()
	svc := NewCourseService(stores, zerolog.Nop())

	req := newCourseRequest()
	req.Review = "Solid intro."
	req.Textbook = strPtr("978-0-262-03384-8")

	_, err := svc.CreateCourse(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, stores.books, 1)
	for _, book := range stores.books {
		require.NotNil(t, book.ISBN)
		assert.Equal(t, "978-0-262-03384-8", *book.ISBN)
		assert.Nil(t, book.Title)
	}
}

func TestCreateCourse_NoTextbookSentinel(t *testing.T) {
	stores := newFakeStores()
	svc := NewCourseService(stores, zerolog.Nop())

	req := newCourseRequest()
	req.Review = "No book needed."
	req.Textbook = strPtr("n/a")

	_, err := svc.CreateCourse(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, stores.books)
	require.Len(t, stores.ratings, 1)
	for _, r := range stores.ratings {
		assert.Nil(t, r.BookID)
	}
}

func TestCreateCourse_InvalidDeliveryMode(t *testing.T) {
	svc := NewCourseService(newFakeStores(), zerolog.Nop())

	req := newCourseRequest()
	req.DeliveryMode = "Correspondence"

	_, err := svc.CreateCourse(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourse_RatingOutOfRange(t *testing.T) {
	svc := NewCourseService(newFakeStores(), zerolog.Nop())

	req := newCourseRequest()
	req.Rating = 6

	_, err := svc.CreateCourse(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange)
}

func TestGetCourse_NotFound(t *testing.T) {
	svc := NewCourseService(newFakeStores(), zerolog.Nop())

	_, err := svc.GetCourse(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourse_InvalidID(t *testing.T) {
	svc := NewCourseService(newFakeStores(), zerolog.Nop())

	_, err := svc.GetCourse(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetCourseDetail_IncludesRatingsAndAverage(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	course := stores.addCourse(school.ID, "Algorithms", "CS 300", "Computer Science", "In-Person")

	ratingSvc := NewRatingService(stores, zerolog.Nop())
	for _, score := range []int{3, 5} {
		_, err := ratingSvc.CreateRating(context.Background(), &dto.CreateRatingRequest{
			CourseID: course.ID,
			Rating:   score,
			Review:   "review",
		})
		require.NoError(t, err)
	}

	svc := NewCourseService(stores, zerolog.Nop())
	detail, err := svc.GetCourseDetail(context.Background(), course.ID)
	require.NoError(t, err)

	assert.Equal(t, "Truman State University", detail.SchoolName)
	assert.Len(t, detail.Ratings, 2)
	assert.EqualValues(t, 2, detail.RatingCount)
	require.NotNil(t, detail.AverageRating)
	assert.InDelta(t, 4.0, *detail.AverageRating, 0.001)
}

func TestListCourses_Filters(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	stores.addCourse(school.ID, "Algorithms", "CS 300", "Computer Science", "In-Person")
	stores.addCourse(school.ID, "Digital Marketing", "MKTG 310", "Business", "Online")
	genetics := stores.addCourse(school.ID, "Genetics", "BIOL 310", "Biology", "Online")
	dialogues := "Natural & Physical World"
	genetics.DialoguesRequirement = &dialogues

	svc := NewCourseService(stores, zerolog.Nop())

	all, err := svc.ListCourses(context.Background(), repositories.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	online, err := svc.ListCourses(context.Background(), repositories.CourseFilter{DeliveryMode: "Online"})
	require.NoError(t, err)
	assert.Len(t, online, 2)

	byMajor, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Major: "Computer Science"})
	require.NoError(t, err)
	require.Len(t, byMajor, 1)
	assert.Equal(t, "Algorithms", byMajor[0].Name)

	// Major matches on case-insensitive substring, not exact equality
	partialMajor, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Major: "bio"})
	require.NoError(t, err)
	require.Len(t, partialMajor, 1)
	assert.Equal(t, "Genetics", partialMajor[0].Name)

	searched, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Search: "marketing"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Digital Marketing", searched[0].Name)

	// Search reaches beyond name and number: major and dialogues requirement
	searchedMajor, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Search: "biology"})
	require.NoError(t, err)
	require.Len(t, searchedMajor, 1)
	assert.Equal(t, "Genetics", searchedMajor[0].Name)

	searchedDialogues, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Search: "physical world"})
	require.NoError(t, err)
	require.Len(t, searchedDialogues, 1)
	assert.Equal(t, "Genetics", searchedDialogues[0].Name)

	// Filters combine with AND
	combined, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Major: "Business", DeliveryMode: "Online"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Digital Marketing", combined[0].Name)

	noOverlap, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Major: "Business", DeliveryMode: "In-Person"})
	require.NoError(t, err)
	assert.Empty(t, noOverlap)

	none, err := svc.ListCourses(context.Background(), repositories.CourseFilter{Search: "underwater basket weaving"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
