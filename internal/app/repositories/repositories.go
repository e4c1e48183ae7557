// Package repositories mediates all reads and writes to the store. Every
// repository is bound to a db.Querier, so the same methods run against the
// pool or against a transaction handle obtained by the service layer.
package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdelaney/ratemyclass/internal/db"
)

// ErrNotFound is the shared sentinel for missing rows.
var ErrNotFound = errors.New("resource not found")

// statementBuilder returns a squirrel builder with postgres placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Repositories bundles all repositories bound to the shared pool.
type Repositories struct {
	SchoolRepository    *SchoolRepository
	CourseRepository    *CourseRepository
	ProfessorRepository *ProfessorRepository
	BookRepository      *BookRepository
	RatingRepository    *RatingRepository
	UserRepository      *UserRepository
}

// NewRepositories creates the repository container
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:    NewSchoolRepository(pool),
		CourseRepository:    NewCourseRepository(pool),
		ProfessorRepository: NewProfessorRepository(pool),
		BookRepository:      NewBookRepository(pool),
		RatingRepository:    NewRatingRepository(pool),
		UserRepository:      NewUserRepository(pool),
	}
}

var _ db.Querier = (*pgxpool.Pool)(nil)
