package commands

import (
	"context"

	"appointment-booking/internal/domain/provider"
	"appointment-booking/internal/domain/user"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/pkg/jwt"
	"appointment-booking/internal/pkg/password"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyExists = errs.New("email already exists")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInvalidRefresh     = errs.New("invalid refresh token")
	ErrUserNotFound       = errs.New("user not found")
)

type RegisterParams struct {
	Email    string
	Password string
	Role     string
	// Provider profile, used only when Role is provider.
	ProviderName      string
	ProviderSpecialty string
	ProviderBio       string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	// Register creates the user row and, for provider signups, the provider
	// profile in the same transaction.
	Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, email, rawPassword string) (*queries.AuthorizedUserView, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	users  queries.UserReadStore
	tokens *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserReadStore, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		users:  users,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(params.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	entity := user.NewUser(email, hash, role)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err = tx.Users().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyExists)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if role == user.RoleProvider {
			prof, err := provider.NewProvider(userID, params.ProviderName, params.ProviderSpecialty, params.ProviderBio)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if _, err := tx.Providers().Create(ctx, tx.DB(), prof); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*queries.AuthorizedUserView, *TokenPair, error) {
	view, hash, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password; do not leak which part failed.
			return nil, nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issueTokens(view.ID, user.Role(view.Role))
	if err != nil {
		return nil, nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, pair, nil
}

// RefreshToken re-reads the user so a deactivated account cannot keep
// minting access tokens from an old refresh token.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRefresh)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefresh
	}

	view, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidRefresh)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrInvalidRefresh
	}

	return a.issueTokens(view.ID, user.Role(view.Role))
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate access token")
	}
	refresh, err := a.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
