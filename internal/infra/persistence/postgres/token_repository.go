package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the domain's TokenRepository interface using GORM.
// It covers both email confirmation tokens and the bearer credentials.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// CreateConfirmToken persists a freshly generated confirmation token.
func (repo *tokenRepository) CreateConfirmToken(ctx context.Context, token *entity.ConfirmEmailToken) error {
	tokenM := &model.ConfirmEmailTokenModel{
		UserID: token.UserID,
		Key:    token.Key,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create confirm token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindConfirmToken retrieves the token matching the (email, key) pair by
// joining through the owning user.
func (repo *tokenRepository) FindConfirmToken(ctx context.Context, email, key string) (*entity.ConfirmEmailToken, error) {
	var tokenM model.ConfirmEmailTokenModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = confirm_email_tokens.user_id").
		Where("users.email = ? AND confirm_email_tokens.key = ?", email, key).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfirmTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find confirm token")
	}

	return toConfirmTokenDomain(&tokenM), nil
}

// DeleteConfirmTokensByUserID removes every confirmation token of a user.
func (repo *tokenRepository) DeleteConfirmTokensByUserID(ctx context.Context, userID uint) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ConfirmEmailTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete confirm tokens")
	}

	return nil
}

// CountConfirmTokensByUserID returns how many confirmation tokens a user has.
func (repo *tokenRepository) CountConfirmTokensByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ConfirmEmailTokenModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count confirm tokens")
	}

	return count, nil
}

// GetOrCreateAccessToken returns the user's bearer credential, creating it
// with the supplied key when none exists yet. The stored key wins, so
// repeated logins keep handing out the same token.
func (repo *tokenRepository) GetOrCreateAccessToken(ctx context.Context, userID uint, key string) (*entity.AccessToken, error) {
	tokenM := model.AccessTokenModel{UserID: userID, Key: key}
	err := repo.db.WithContext(ctx).
		Where(model.AccessTokenModel{UserID: userID}).
		Attrs(model.AccessTokenModel{Key: key}).
		Clauses(clause.OnConflict{DoNothing: true}).
		FirstOrCreate(&tokenM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get or create access token")
	}

	// FirstOrCreate with OnConflict DoNothing leaves a stale struct when a
	// concurrent login won the insert race. Re-read to get the stored row.
	if tokenM.ID == 0 {
		err = repo.db.WithContext(ctx).
			Where("user_id = ?", userID).
			First(&tokenM).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload access token")
		}
	}

	return toAccessTokenDomain(&tokenM), nil
}

// FindAccessTokenByKey resolves a bearer key back to its token record.
func (repo *tokenRepository) FindAccessTokenByKey(ctx context.Context, key string) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel
	err := repo.db.WithContext(ctx).Where("key = ?", key).First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	return toAccessTokenDomain(&tokenM), nil
}

// --- Mapper Functions ---

func toConfirmTokenDomain(data *model.ConfirmEmailTokenModel) *entity.ConfirmEmailToken {
	if data == nil {
		return nil
	}

	return &entity.ConfirmEmailToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}
}

func toAccessTokenDomain(data *model.AccessTokenModel) *entity.AccessToken {
	if data == nil {
		return nil
	}

	return &entity.AccessToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}
}
