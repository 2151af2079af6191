package repositories

import (
	"context"
	"time"

	"hrdesk/internal/adapters/persistence/models"
)

// CredentialRepository defines credential repository interface
type CredentialRepository interface {
	Create(ctx context.Context, cred *models.Credential) error
	GetByIdentifier(ctx context.Context, identifier string) (*models.Credential, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*models.Credential, error)
	UpdatePassword(ctx context.Context, identifier, passwordHash string, at time.Time) error
	TouchLogin(ctx context.Context, id uint, at time.Time) error
	ExistsByIdentifier(ctx context.Context, identifier string) (bool, error)
}

// OneTimeCodeRepository defines one-time code repository interface
type OneTimeCodeRepository interface {
	Create(ctx context.Context, code *models.OneTimeCode) error
	GetLatestPending(ctx context.Context, identifier, purpose string) (*models.OneTimeCode, error)
	IncrementAttempts(ctx context.Context, id uint) error
	Consume(ctx context.Context, id uint, at time.Time) error
	ConsumeAllPending(ctx context.Context, identifier, purpose string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// StateRepository stores serialized workspace state by key
type StateRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
