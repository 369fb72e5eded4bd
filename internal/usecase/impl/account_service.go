// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	tokenRepo   repository.TokenRepository
	hasher      service.PasswordHasher
	tokenIssuer service.TokenIssuer
	mailer      service.Mailer
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	TokenRepo   repository.TokenRepository
	Hasher      service.PasswordHasher
	TokenIssuer service.TokenIssuer
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		tokenRepo:   params.TokenRepo,
		hasher:      params.Hasher,
		tokenIssuer: params.TokenIssuer,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account with one confirmation token, then
// mails the token once the transaction has committed.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("type", input.Type.String()))

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingArguments
	}
	// An omitted type means a buyer account, matching the upstream default.
	if input.Type == "" {
		input.Type = entity.UserTypeBuyer
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account type")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password, service.IdentityHints{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	confirmKey, err := srv.tokenIssuer.NewKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue confirmation key")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Company:      input.Company,
		Position:     input.Position,
		Type:         input.Type,
		IsActive:     false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return createErr
		}

		return repoFactory.TokenRepo().CreateConfirmToken(ctx, &entity.ConfirmEmailToken{
			UserID: newUser.ID,
			Key:    confirmKey,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Mail dispatch is an explicit post-commit step, never part of the
	// transaction. A failed send leaves the account registered.
	subject := fmt.Sprintf("Confirmation token for %s", newUser.Email)
	if sendErr := srv.mailer.Send(ctx, subject, confirmKey, []string{newUser.Email}); sendErr != nil {
		srv.log(ctx).Error("Failed to send confirmation token", slog.String("email", newUser.Email), slog.Any("error", sendErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Confirm activates the account matching the email and token pair and burns
// every outstanding confirmation token of that account.
func (srv *accountService) Confirm(ctx context.Context, input usecase.ConfirmInput) error {
	if input.Email == "" || input.Token == "" {
		return domainerrors.ErrMissingArguments
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()
		userRepo := repoFactory.UserRepo()

		token, findErr := tokenRepo.FindConfirmToken(ctx, input.Email, input.Token)
		if errors.Is(findErr, repository.ErrConfirmTokenNotFound) {
			return domainerrors.ErrConfirmTokenInvalid
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find confirm token")
		}

		user, findErr := userRepo.FindByID(ctx, token.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user for confirmation")
		}

		user.IsActive = true
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return updateErr
		}

		return tokenRepo.DeleteConfirmTokensByUserID(ctx, user.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Email confirmation failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Email confirmed", slog.String("email", input.Email))

	return nil
}

// Login verifies the credentials and returns the user's single bearer token.
// Unknown, mismatched and inactive accounts all fail identically so the
// response does not leak which part was wrong.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingArguments
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) || !user.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}

	candidateKey, err := srv.tokenIssuer.NewKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token key")
	}

	token, err := srv.tokenRepo.GetOrCreateAccessToken(ctx, user.ID, candidateKey)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token.Key, User: user}, nil
}

// Authenticate resolves a bearer key to the identity of its active owner.
func (srv *accountService) Authenticate(ctx context.Context, key string) (entity.Identity, error) {
	if key == "" {
		return entity.Identity{}, domainerrors.ErrAuthenticationRequired
	}

	token, err := srv.tokenRepo.FindAccessTokenByKey(ctx, key)
	if errors.Is(err, repository.ErrAccessTokenNotFound) {
		return entity.Identity{}, domainerrors.ErrAuthenticationRequired
	}
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "failed to resolve bearer key")
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "failed to load token owner")
	}
	if !user.IsActive {
		return entity.Identity{}, domainerrors.ErrAuthenticationRequired
	}

	return entity.Identity{UserID: user.ID, Type: user.Type, Email: user.Email}, nil
}
