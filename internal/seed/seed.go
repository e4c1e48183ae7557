package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/config"
	"github.com/jdelaney/ratemyclass/internal/pkg/auth"
)

// CreateDefaultData seeds the admin account, the default professor and
// the starter course catalog. Every step is idempotent so it is safe to
// run on each start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	if err := seedAdminUser(ctx, repos.UserRepository, cfg, lgr); err != nil {
		return err
	}

	if _, err := repos.ProfessorRepository.GetOrCreateDefault(ctx); err != nil {
		return fmt.Errorf("failed to seed default professor: %w", err)
	}

	if err := seedCourseCatalog(ctx, repos, lgr); err != nil {
		return err
	}

	return nil
}

func seedAdminUser(ctx context.Context, users *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	exists, err := users.UsernameExists(ctx, cfg.Admin.Username)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	lgr.Info().Str("username", admin.Username).Msg("Admin user created")
	return nil
}

func seedCourseCatalog(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	school, err := repos.SchoolRepository.GetOrCreate(ctx, trumanSchoolName)
	if err != nil {
		return fmt.Errorf("failed to seed school: %w", err)
	}

	added := 0
	for _, entry := range trumanCourses {
		exists, err := repos.CourseRepository.Exists(ctx, school.ID, entry.Number)
		if err != nil {
			return fmt.Errorf("failed to check course %s: %w", entry.Number, err)
		}
		if exists {
			continue
		}

		course := &models.Course{
			Name:         entry.Name,
			Number:       entry.Number,
			Major:        entry.Major,
			SchoolID:     school.ID,
			DeliveryMode: entry.Delivery,
		}
		if entry.Dialogues != "" {
			dialogues := entry.Dialogues
			course.DialoguesRequirement = &dialogues
		}

		if _, err := repos.CourseRepository.GetOrCreate(ctx, course); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", entry.Number, err)
		}
		added++
	}

	if added > 0 {
		lgr.Info().Int("count", added).Str("school", school.Name).Msg("Seeded course catalog")
	}
	return nil
}
