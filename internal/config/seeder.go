package config

import (
	"context"
	"time"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/pkg/password"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DevCredential is a sign-in seeded for local development
type DevCredential struct {
	Identifier string
	EmployeeID string
	Password   string
}

// DefaultDevCredentials matches the fixture employees of the local backend mock
var DefaultDevCredentials = []DevCredential{
	{Identifier: "admin@hrdesk.local", EmployeeID: "E000", Password: "admin123!"},
	{Identifier: "employee@hrdesk.local", EmployeeID: "E001", Password: "employee1!"},
}

// Seeder handles database seeding
type Seeder struct {
	creds repositories.CredentialRepository
	seeds []DevCredential
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, seeds []DevCredential) *Seeder {
	return &Seeder{creds: repositories.NewCredentialRepository(db), seeds: seeds}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Info().Msg("running database seeders")

	for _, seed := range s.seeds {
		if err := s.seedCredential(ctx, seed); err != nil {
			log.Warn().Err(err).Str("identifier", seed.Identifier).Msg("credential seeder skipped")
		}
	}

	log.Info().Msg("database seeding completed")
	return nil
}

// seedCredential creates a development sign-in.
// This is for development/testing only.
func (s *Seeder) seedCredential(ctx context.Context, seed DevCredential) error {
	exists, err := s.creds.ExistsByIdentifier(ctx, seed.Identifier)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := password.Hash(seed.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	cred := &models.Credential{
		Identifier:        seed.Identifier,
		EmployeeID:        seed.EmployeeID,
		PasswordHash:      hashed,
		Verified:          true,
		PasswordChangedAt: &now,
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		return err
	}

	log.Info().Str("identifier", seed.Identifier).Msg("dev credential created")
	return nil
}
