package lifecycle

import (
	"fmt"

	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	FirmID   string
}

// CreateUser is the admin surface for adding firm members and client contacts.
// Users have no lifecycle of their own and no audit trail.
func (m *Manager) CreateUser(in CreateUserInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.FirmID == "" {
		return nil, fmt.Errorf("%w: name, email and firm id are required", models.ErrValidation)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, in.Role)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", models.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		FirmID:       in.FirmID,
	}

	err = m.store.Transaction(func(tx *store.Store) error {
		existing, err := tx.UserByEmail(in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: email already in use", models.ErrValidation)
		}
		return tx.Create(user)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("user created", "userId", user.ID, "role", user.Role, "firmId", user.FirmID)
	return user, nil
}

type UpdateFirmSettingsInput struct {
	Name         *string
	LogoURL      *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
}

func (m *Manager) UpdateFirmSettings(firmID string, in UpdateFirmSettingsInput) (*models.Firm, error) {
	var firm *models.Firm
	err := m.store.Transaction(func(tx *store.Store) error {
		var err error
		firm, err = tx.FirmByID(firmID)
		if err != nil {
			return err
		}
		if firm == nil {
			return models.ErrNotFound
		}

		if in.Name != nil {
			firm.Name = *in.Name
		}
		if in.LogoURL != nil {
			firm.Settings.LogoURL = *in.LogoURL
		}
		if in.ContactEmail != nil {
			firm.Settings.ContactEmail = *in.ContactEmail
		}
		if in.ContactPhone != nil {
			firm.Settings.ContactPhone = *in.ContactPhone
		}
		if in.Address != nil {
			firm.Settings.Address = *in.Address
		}
		return tx.Save(firm)
	})
	if err != nil {
		return nil, err
	}
	return firm, nil
}
