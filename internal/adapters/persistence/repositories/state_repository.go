package repositories

import (
	"context"

	"hrdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stateRepository keeps workspace state in the database
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a database-backed state repository
func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

// Load returns the blob stored under key
func (r *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var st models.PersistedState
	if err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&st).Error; err != nil {
		return nil, notFound(err)
	}
	return []byte(st.Data), nil
}

// Save upserts the blob under key
func (r *stateRepository) Save(ctx context.Context, key string, data []byte) error {
	st := models.PersistedState{Key: key, Data: string(data)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&st).Error
}

// Delete removes the blob under key. Missing keys are not an error.
func (r *stateRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("`key` = ?", key).
		Delete(&models.PersistedState{}).Error
}
