package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

func TestGetAllSchools(t *testing.T) {
	stores := newFakeStores()
	stores.addSchool("Truman State University")
	stores.addSchool("University of Missouri")

	svc := NewSchoolService(stores)

	schools, err := svc.GetAllSchools(context.Background())
	require.NoError(t, err)
	assert.Len(t, schools, 2)
}

func TestGetSchoolCourses(t *testing.T) {
	stores := newFakeStores()
	school := stores.addSchool("Truman State University")
	other := stores.addSchool("University of Missouri")
	stores.addCourse(school.ID, "Algorithms", "CS 300", "Computer Science", "In-Person")
	stores.addCourse(school.ID, "Genetics", "BIOL 210", "Biology", "In-Person")
	stores.addCourse(other.ID, "Journalism", "JOUR 100", "Journalism", "In-Person")

	svc := NewSchoolService(stores)

	courses, err := svc.GetSchoolCourses(context.Background(), school.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestGetSchoolCourses_SchoolNotFound(t *testing.T) {
	svc := NewSchoolService(newFakeStores())

	_, err := svc.GetSchoolCourses(context.Background(), 77)
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
}

func TestGetSchoolCourses_InvalidID(t *testing.T) {
	svc := NewSchoolService(newFakeStores())

	_, err := svc.GetSchoolCourses(context.Background(), -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
