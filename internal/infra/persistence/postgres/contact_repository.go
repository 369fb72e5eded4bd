package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the domain's ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// FindByUserID retrieves the contact record of a user.
func (repo *contactRepository) FindByUserID(ctx context.Context, userID uint) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by user id")
	}

	return toContactDomain(&contactM), nil
}

// FindByID retrieves a contact by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uint) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).First(&contactM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// Create persists a new contact for a user.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("contact already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID

	return nil
}

// Update modifies an existing contact record.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Save(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update contact")
	}

	return nil
}

// DeleteByUserID removes the contact record of a user.
func (repo *contactRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Street:    data.Street,
		House:     data.House,
		Structure: data.Structure,
		Building:  data.Building,
		Apartment: data.Apartment,
		Phone:     data.Phone,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Street:    data.Street,
		House:     data.House,
		Structure: data.Structure,
		Building:  data.Building,
		Apartment: data.Apartment,
		Phone:     data.Phone,
	}
}
