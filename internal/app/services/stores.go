package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/db"
)

// Store interfaces cover the repository operations the services consume.
// The production implementation binds them to pgx repositories; tests
// substitute in-memory fakes.

// SchoolStore mediates school reads and get-or-create writes
type SchoolStore interface {
	GetAll(ctx context.Context) ([]*models.School, error)
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetOrCreate(ctx context.Context, name string) (*models.School, error)
}

// CourseStore mediates course reads, get-or-create writes and aggregates
type CourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Course, error)
	GetOrCreate(ctx context.Context, course *models.Course) (*models.Course, error)
	ListAggregates(ctx context.Context, filter repositories.CourseFilter) ([]*models.CourseAggregate, error)
	GetAggregate(ctx context.Context, courseID int64) (*models.CourseAggregate, error)
}

// ProfessorStore resolves the sentinel professor
type ProfessorStore interface {
	GetOrCreateDefault(ctx context.Context) (*models.Professor, error)
}

// BookStore resolves free-text textbook references to book rows
type BookStore interface {
	GetOrCreate(ctx context.Context, textbookRef string) (*models.Book, error)
}

// RatingStore mediates rating writes and per-course reads
type RatingStore interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Rating, error)
}

// UserStore mediates user reads for authentication
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Stores bundles the stores behind a single handle. InTransaction yields a
// store set bound to one transaction, committed when fn returns nil and
// rolled back otherwise.
type Stores interface {
	Schools() SchoolStore
	Courses() CourseStore
	Professors() ProfessorStore
	Books() BookStore
	Ratings() RatingStore
	Users() UserStore
	InTransaction(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}

// dbStores is the production Stores implementation over pgx repositories.
type dbStores struct {
	pg         *db.PostgresDB
	schools    *repositories.SchoolRepository
	courses    *repositories.CourseRepository
	professors *repositories.ProfessorRepository
	books      *repositories.BookRepository
	ratings    *repositories.RatingRepository
	users      *repositories.UserRepository
}

// NewStores creates the production store set over the shared pool
func NewStores(pg *db.PostgresDB, repos *repositories.Repositories) Stores {
	return &dbStores{
		pg:         pg,
		schools:    repos.SchoolRepository,
		courses:    repos.CourseRepository,
		professors: repos.ProfessorRepository,
		books:      repos.BookRepository,
		ratings:    repos.RatingRepository,
		users:      repos.UserRepository,
	}
}

func (s *dbStores) Schools() SchoolStore       { return s.schools }
func (s *dbStores) Courses() CourseStore       { return s.courses }
func (s *dbStores) Professors() ProfessorStore { return s.professors }
func (s *dbStores) Books() BookStore           { return s.books }
func (s *dbStores) Ratings() RatingStore       { return s.ratings }
func (s *dbStores) Users() UserStore           { return s.users }

// InTransaction runs fn with every store bound to the same transaction.
func (s *dbStores) InTransaction(ctx context.Context, fn func(ctx context.Context, txStores Stores) error) error {
	return s.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		bound := &dbStores{
			pg:         s.pg,
			schools:    s.schools.WithTx(tx),
			courses:    s.courses.WithTx(tx),
			professors: s.professors.WithTx(tx),
			books:      s.books.WithTx(tx),
			ratings:    s.ratings.WithTx(tx),
			users:      s.users,
		}
		return fn(ctx, bound)
	})
}
