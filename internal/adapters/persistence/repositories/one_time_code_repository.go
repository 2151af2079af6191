package repositories

import (
	"context"
	"time"

	"hrdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// oneTimeCodeRepository implements OneTimeCodeRepository interface
type oneTimeCodeRepository struct {
	db *gorm.DB
}

// NewOneTimeCodeRepository creates a new one-time code repository
func NewOneTimeCodeRepository(db *gorm.DB) OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

// Create stores a new code
func (r *oneTimeCodeRepository) Create(ctx context.Context, code *models.OneTimeCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// GetLatestPending gets the newest unconsumed code for identifier and purpose
func (r *oneTimeCodeRepository) GetLatestPending(ctx context.Context, identifier, purpose string) (*models.OneTimeCode, error) {
	var code models.OneTimeCode
	err := r.db.WithContext(ctx).
		Where("identifier = ? AND purpose = ?", identifier, purpose).
		Where("consumed_at IS NULL").
		Order("id DESC").
		First(&code).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &code, nil
}

// IncrementAttempts counts one failed verification
func (r *oneTimeCodeRepository) IncrementAttempts(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.OneTimeCode{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + ?", 1)).Error
}

// Consume marks a code used
func (r *oneTimeCodeRepository) Consume(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.OneTimeCode{}).
		Where("id = ?", id).
		Update("consumed_at", at).Error
}

// ConsumeAllPending supersedes every outstanding code for identifier and purpose
func (r *oneTimeCodeRepository) ConsumeAllPending(ctx context.Context, identifier, purpose string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.OneTimeCode{}).
		Where("identifier = ? AND purpose = ?", identifier, purpose).
		Where("consumed_at IS NULL").
		Update("consumed_at", at).Error
}

// DeleteExpired removes codes that expired before the cutoff
func (r *oneTimeCodeRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&models.OneTimeCode{})
	return res.RowsAffected, res.Error
}
