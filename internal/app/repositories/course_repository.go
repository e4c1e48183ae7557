package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/db"
	"github.com/jdelaney/ratemyclass/internal/pkg/logger"
)

// Course error types
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = ErrNotFound
)

// CourseFilter carries the optional filters for aggregate listing. Zero
// values mean "no filter"; set filters are combined with AND.
type CourseFilter struct {
	// Search matches case-insensitively against name, number, major,
	// dialogues requirement and delivery mode; any field containing the
	// term is a match.
	Search       string
	Major        string
	DeliveryMode string
	SchoolID     int64
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(q db.Querier) *CourseRepository {
	return &CourseRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return &CourseRepository{db: tx, sb: r.sb}
}

const courseColumns = "course_id, course_name, course_number, major, school_id, dialogues_requirement, delivery_mode, created_at, updated_at"

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Number,
		&c.Major,
		&c.SchoolID,
		&c.DialoguesRequirement,
		&c.DeliveryMode,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM course
		WHERE course_id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetBySchoolAndNumber retrieves a course by its (school_id, course_number) pair
func (r *CourseRepository) GetBySchoolAndNumber(ctx context.Context, schoolID int64, courseNumber string) (*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM course
		WHERE school_id = $1 AND course_number = $2
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, schoolID, courseNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by school and number: %w", err)
	}

	return course, nil
}

// Exists checks if a course exists for the (school_id, course_number) pair
func (r *CourseRepository) Exists(ctx context.Context, schoolID int64, courseNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM course WHERE school_id = $1 AND course_number = $2)`,
		schoolID, courseNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// GetBySchoolID retrieves all courses of a school
func (r *CourseRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM course
		WHERE school_id = $1
		ORDER BY course_number ASC
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error querying courses by school: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetOrCreate returns the existing course for (school_id, course_number)
// or inserts a new one with the supplied fields. An existing match keeps
// its fields unchanged (first write wins). The unique constraint on the
// pair resolves concurrent creation: the loser of the race reads the
// winner's row.
func (r *CourseRepository) GetOrCreate(ctx context.Context, course *models.Course) (*models.Course, error) {
	existing, err := r.GetBySchoolAndNumber(ctx, course.SchoolID, course.Number)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrCourseNotFound) {
		return nil, err
	}

	insert := `
		INSERT INTO course (course_name, course_number, major, school_id, dialogues_requirement, delivery_mode)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (school_id, course_number) DO NOTHING
		RETURNING ` + courseColumns + `
	`

	created, err := scanCourse(r.db.QueryRow(ctx, insert,
		course.Name, course.Number, course.Major, course.SchoolID, course.DialoguesRequirement, course.DeliveryMode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race, the pair exists now
			return r.GetBySchoolAndNumber(ctx, course.SchoolID, course.Number)
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return created, nil
}

// aggregateSelect builds the shared join+group-by query producing per-course
// average rating and rating count. Ratings are optional (LEFT JOIN), the
// school is required.
func (r *CourseRepository) aggregateSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.course_id",
		"c.course_name",
		"c.course_number",
		"c.major",
		"c.school_id",
		"s.school_name",
		"c.dialogues_requirement",
		"c.delivery_mode",
		"AVG(r.rating)::float8 AS average_rating",
		"COUNT(r.rating_id) AS rating_count",
		"c.created_at",
	).
		From("course c").
		Join("school s ON s.school_id = c.school_id").
		LeftJoin("rating r ON r.course_id = c.course_id").
		GroupBy("c.course_id", "s.school_name")
}

func scanCourseAggregate(row pgx.Row) (*models.CourseAggregate, error) {
	var a models.CourseAggregate
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Number,
		&a.Major,
		&a.SchoolID,
		&a.SchoolName,
		&a.DialoguesRequirement,
		&a.DeliveryMode,
		&a.AverageRating,
		&a.RatingCount,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAggregates retrieves all courses with their rating aggregates,
// narrowed by the given filters.
func (r *CourseRepository) ListAggregates(ctx context.Context, filter CourseFilter) ([]*models.CourseAggregate, error) {
	qb := r.aggregateSelect().OrderBy("c.course_number ASC", "c.course_id ASC")

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"c.course_name": term},
			squirrel.ILike{"c.course_number": term},
			squirrel.ILike{"c.major": term},
			squirrel.ILike{"c.dialogues_requirement": term},
			squirrel.ILike{"c.delivery_mode": term},
		})
	}
	if filter.Major != "" {
		qb = qb.Where(squirrel.ILike{"c.major": "%" + filter.Major + "%"})
	}
	if filter.DeliveryMode != "" {
		qb = qb.Where(squirrel.Eq{"c.delivery_mode": filter.DeliveryMode})
	}
	if filter.SchoolID > 0 {
		qb = qb.Where(squirrel.Eq{"c.school_id": filter.SchoolID})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course aggregate SQL")
		return nil, fmt.Errorf("failed to build course aggregate query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying course aggregates: %w", err)
	}
	defer rows.Close()

	aggregates := []*models.CourseAggregate{}
	for rows.Next() {
		aggregate, err := scanCourseAggregate(rows)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return aggregates, nil
}

// GetAggregate retrieves the rating aggregate for a single course
func (r *CourseRepository) GetAggregate(ctx context.Context, courseID int64) (*models.CourseAggregate, error) {
	sql, args, err := r.aggregateSelect().
		Where(squirrel.Eq{"c.course_id": courseID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course aggregate SQL")
		return nil, fmt.Errorf("failed to build course aggregate query: %w", err)
	}

	aggregate, err := scanCourseAggregate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course aggregate: %w", err)
	}

	return aggregate, nil
}
