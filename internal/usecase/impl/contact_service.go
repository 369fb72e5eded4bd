package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetContact retrieves the user's contact record.
func (srv *contactService) GetContact(ctx context.Context, userID uint) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrContactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contact")
	}

	return contact, nil
}

// CreateContact stores the user's delivery contact.
func (srv *contactService) CreateContact(ctx context.Context, userID uint, input usecase.CreateContactInput) (*entity.Contact, error) {
	if input.City == "" || input.Street == "" || input.House == "" || input.Phone == "" {
		return nil, domainerrors.ErrMissingArguments
	}

	contact := &entity.Contact{
		UserID:    userID,
		City:      input.City,
		Street:    input.Street,
		House:     input.House,
		Structure: input.Structure,
		Building:  input.Building,
		Apartment: input.Apartment,
		Phone:     input.Phone,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		srv.log(ctx).Warn("Failed to create contact", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return contact, nil
}

// PatchContact partially updates the user's existing contact. Fields left
// nil in the input keep their stored value.
func (srv *contactService) PatchContact(ctx context.Context, userID uint, input usecase.PatchContactInput) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrContactNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contact for patch")
	}

	applyIfSet(&contact.City, input.City)
	applyIfSet(&contact.Street, input.Street)
	applyIfSet(&contact.House, input.House)
	applyIfSet(&contact.Structure, input.Structure)
	applyIfSet(&contact.Building, input.Building)
	applyIfSet(&contact.Apartment, input.Apartment)
	applyIfSet(&contact.Phone, input.Phone)

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// DeleteContact removes the user's contact record.
func (srv *contactService) DeleteContact(ctx context.Context, userID uint) error {
	err := srv.contactRepo.DeleteByUserID(ctx, userID)
	if errors.Is(err, repository.ErrContactNotFound) {
		return domainerrors.ErrContactNotFound
	}

	return err
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
