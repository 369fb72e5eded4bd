package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for delivery contact handlers.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// GetContact returns the caller's delivery contact.
func (h *ContactHandler) GetContact(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	contact, err := h.uc.GetContact(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactView(contact), "")
}

// CreateContact stores the caller's delivery contact.
func (h *ContactHandler) CreateContact(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var input usecase.CreateContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact payload")
	}

	contact, err := h.uc.CreateContact(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactView(contact), "Contact created")
}

// PatchContact partially updates the caller's delivery contact.
func (h *ContactHandler) PatchContact(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	var input usecase.PatchContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact payload")
	}

	contact, err := h.uc.PatchContact(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactView(contact), "Contact updated")
}

// DeleteContact removes the caller's delivery contact.
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	if err := h.uc.DeleteContact(c.Request().Context(), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact deleted")
}
