package repositories

import (
	"context"
	"errors"
	"time"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/core/domain"

	"gorm.io/gorm"
)

// credentialRepository implements CredentialRepository interface
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

// Create creates a new credential
func (r *credentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

// GetByIdentifier gets a credential by its normalized identifier
func (r *credentialRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Credential, error) {
	var cred models.Credential
	err := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&cred).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &cred, nil
}

// GetByEmployeeID gets every credential linked to an employee
func (r *credentialRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]*models.Credential, error) {
	var creds []*models.Credential
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id").
		Find(&creds).Error
	if err != nil {
		return nil, err
	}
	return creds, nil
}

// UpdatePassword replaces the password hash and marks the credential verified
func (r *credentialRepository) UpdatePassword(ctx context.Context, identifier, passwordHash string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Credential{}).
		Where("identifier = ?", identifier).
		Updates(map[string]interface{}{
			"password_hash":       passwordHash,
			"verified":            true,
			"password_changed_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TouchLogin records a successful sign-in
func (r *credentialRepository) TouchLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Credential{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

// ExistsByIdentifier checks if identifier has a credential
func (r *credentialRepository) ExistsByIdentifier(ctx context.Context, identifier string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Credential{}).Where("identifier = ?", identifier).Count(&count).Error
	return count > 0, err
}

// notFound maps gorm's missing-row error onto the domain one
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
