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

// ErrProfessorNotFound is returned when a professor is not found.
var ErrProfessorNotFound = ErrNotFound

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db db.Querier
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(q db.Querier) *ProfessorRepository {
	return &ProfessorRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ProfessorRepository) WithTx(tx pgx.Tx) *ProfessorRepository {
	return &ProfessorRepository{db: tx}
}

const professorColumns = "professor_id, first_name, last_name, email, created_at, updated_at"

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	var p models.Professor
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetDefault retrieves the sentinel professor by its stable name key
func (r *ProfessorRepository) GetDefault(ctx context.Context) (*models.Professor, error) {
	query := `
		SELECT ` + professorColumns + `
		FROM professor
		WHERE first_name = $1 AND last_name = $2
		ORDER BY professor_id ASC
		LIMIT 1
	`

	professor, err := scanProfessor(r.db.QueryRow(ctx, query,
		models.DefaultProfessorFirstName, models.DefaultProfessorLastName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error getting default professor: %w", err)
	}

	return professor, nil
}

// GetOrCreateDefault returns the sentinel professor, creating it once if
// absent. The unique name-pair index resolves concurrent first-use.
func (r *ProfessorRepository) GetOrCreateDefault(ctx context.Context) (*models.Professor, error) {
	professor, err := r.GetDefault(ctx)
	if err == nil {
		return professor, nil
	}
	if !errors.Is(err, ErrProfessorNotFound) {
		return nil, err
	}

	insert := `
		INSERT INTO professor (first_name, last_name)
		VALUES ($1, $2)
		RETURNING ` + professorColumns + `
	`

	professor, err = scanProfessor(r.db.QueryRow(ctx, insert,
		models.DefaultProfessorFirstName, models.DefaultProfessorLastName))
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return r.GetDefault(ctx)
		}
		return nil, fmt.Errorf("error creating default professor: %w", err)
	}

	return professor, nil
}
