package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthfit/internal/auth"
	"healthfit/internal/codec"
	"healthfit/internal/config"
	"healthfit/internal/db"
	apperrors "healthfit/internal/errors"
	"healthfit/internal/logging"
	"healthfit/internal/model"
	"healthfit/internal/repository"
	"healthfit/internal/service"
)

//go:embed fixtures.json
var defaultFixtures []byte

// Fixtures is the seed file layout: users with their logged records.
type Fixtures struct {
	Users []UserFixture `json:"users"`
}

// UserFixture is one demo account.
type UserFixture struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	Profile    *model.Profile    `json:"profile"`
	Activities []model.Activity  `json:"activities"`
	Nutrition  []model.Nutrition `json:"nutrition"`
	Sleep      []model.Sleep     `json:"sleep"`
}

type options struct {
	file   string
	reset  bool
	dryRun bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users and health records",
		Long: `Load demo users, profiles, activities, meals and sleep records.

Users are created through the same signup path as the API, so passwords are
hashed and emails normalized. Existing users are skipped.

Examples:
  seed                       # load the built-in fixtures
  seed --file demo.json      # load fixtures from a file
  seed --reset               # drop and recreate all tables first
  seed --dry-run             # parse fixtures and print what would be loaded`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "fixtures JSON file (default: built-in fixtures)")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "drop all tables before seeding")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "parse fixtures without touching the database")
	return cmd
}

func loadFixtures(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		data = b
	}
	var f Fixtures
	if err := codec.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for i, u := range f.Users {
		if u.Email == "" || u.Password == "" || u.Name == "" {
			return nil, fmt.Errorf("user %d: name, email and password are required", i)
		}
	}
	return &f, nil
}

func run(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	fixtures, err := loadFixtures(opts.file)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, u := range fixtures.Users {
			_, _ = fmt.Fprintf(out, "%s: %d activities, %d meals, %d sleep records\n",
				service.NormalizeEmail(u.Email), len(u.Activities), len(u.Nutrition), len(u.Sleep))
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()})

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)

	if opts.reset {
		if err := db.Reset(gormDB); err != nil {
			return err
		}
		logging.Info().Msg("tables dropped")
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(gormDB)
	s := &seeder{
		auth:       service.NewAuthService(userRepo, auth.NewPasswordHasher(0), auth.NewJWTService(cfg.Auth.JWTSecret)),
		profiles:   service.NewProfileService(userRepo, nil, 0),
		activities: service.NewActivityService(repository.NewRecordRepository[model.Activity](gormDB), nil),
		nutrition:  service.NewNutritionService(repository.NewRecordRepository[model.Nutrition](gormDB), nil),
		sleep:      service.NewSleepService(repository.NewRecordRepository[model.Sleep](gormDB), nil),
	}

	created, skipped, err := s.seed(cmd.Context(), fixtures)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "seeded %d users, skipped %d existing\n", created, skipped)
	return nil
}

type seeder struct {
	auth       service.AuthService
	profiles   service.ProfileService
	activities service.ActivityService
	nutrition  service.NutritionService
	sleep      service.SleepService
}

func (s *seeder) seed(ctx context.Context, f *Fixtures) (created, skipped int, err error) {
	for _, u := range f.Users {
		user, _, err := s.auth.Signup(ctx, u.Name, u.Email, u.Password)
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			logging.Info().Str("email", u.Email).Msg("user exists, skipping")
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, fmt.Errorf("signup %s: %w", u.Email, err)
		}

		if u.Profile != nil {
			if _, err := s.profiles.Update(ctx, user.ID, *u.Profile); err != nil {
				return created, skipped, err
			}
		}
		for i := range u.Activities {
			if _, err := s.activities.Log(ctx, user.ID, &u.Activities[i]); err != nil {
				return created, skipped, err
			}
		}
		for i := range u.Nutrition {
			if _, err := s.nutrition.Log(ctx, user.ID, &u.Nutrition[i]); err != nil {
				return created, skipped, err
			}
		}
		for i := range u.Sleep {
			if _, err := s.sleep.Log(ctx, user.ID, &u.Sleep[i]); err != nil {
				return created, skipped, err
			}
		}

		logging.Info().
			Str("email", user.Email).
			Int("activities", len(u.Activities)).
			Int("meals", len(u.Nutrition)).
			Int("sleep", len(u.Sleep)).
			Msg("user seeded")
		created++
	}
	return created, skipped, nil
}
