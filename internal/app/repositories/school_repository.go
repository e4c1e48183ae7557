package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/db"
	"github.com/jdelaney/ratemyclass/internal/pkg/dberrors"
)

// ErrSchoolNotFound is returned when a school is not found.
var ErrSchoolNotFound = ErrNotFound

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db db.Querier
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(q db.Querier) *SchoolRepository {
	return &SchoolRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SchoolRepository) WithTx(tx pgx.Tx) *SchoolRepository {
	return &SchoolRepository{db: tx}
}

const schoolColumns = "school_id, school_name, created_at, updated_at"

func scanSchool(row pgx.Row) (*models.School, error) {
	var s models.School
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves all schools ordered by name
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `
		SELECT ` + schoolColumns + `
		FROM school
		ORDER BY school_name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `
		SELECT ` + schoolColumns + `
		FROM school
		WHERE school_id = $1
	`

	school, err := scanSchool(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}

	return school, nil
}

// FindByFuzzyName retrieves the first school whose name contains the given
// term, case-insensitively. Returns ErrSchoolNotFound when nothing matches.
func (r *SchoolRepository) FindByFuzzyName(ctx context.Context, name string) (*models.School, error) {
	query := `
		SELECT ` + schoolColumns + `
		FROM school
		WHERE school_name ILIKE '%' || $1 || '%'
		ORDER BY school_id ASC
		LIMIT 1
	`

	school, err := scanSchool(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error finding school by name: %w", err)
	}

	return school, nil
}

// GetOrCreate returns the first school whose name fuzzily matches, creating
// a new row when there is none. The unique constraint on school_name makes
// concurrent first-use safe: on a duplicate key the existing row is
// re-fetched instead of a second row being created.
func (r *SchoolRepository) GetOrCreate(ctx context.Context, name string) (*models.School, error) {
	school, err := r.FindByFuzzyName(ctx, name)
	if err == nil {
		return school, nil
	}
	if !errors.Is(err, ErrSchoolNotFound) {
		return nil, err
	}

	insert := `
		INSERT INTO school (school_name)
		VALUES ($1)
		RETURNING ` + schoolColumns + `
	`

	school, err = scanSchool(r.db.QueryRow(ctx, insert, name))
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return r.FindByFuzzyName(ctx, name)
		}
		return nil, fmt.Errorf("error creating school: %w", err)
	}

	return school, nil
}
