package service

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mistveil/backoffice-next/internal/app/appconfig"
	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
	"github.com/mistveil/backoffice-next/internal/repo"
)

type Account struct {
	Config      *appconfig.Config
	AccountRepo *repo.Account
}

func NewAccount(conf *appconfig.Config, accountRepo *repo.Account) *Account {
	return &Account{
		Config:      conf,
		AccountRepo: accountRepo,
	}
}

// Login verifies a username and password pair and issues an HS256 access
// token. Unknown usernames and wrong passwords report the same error so a
// caller cannot probe which usernames exist.
func (s *Account) Login(ctx context.Context, request *types.LoginRequest) (*types.Token, error) {
	user, err := s.AccountRepo.GetUserByUsername(ctx, request.Username)
	if errors.Is(err, mverr.ErrNotFound) {
		return nil, mverr.ErrUnauthorized
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, mverr.ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(user.UserID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.Config.JWTExpiry)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Config.JWTSecret))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	if err := s.AccountRepo.TouchLastLogin(ctx, user.UserID, now); err != nil {
		log.Warn().
			Err(err).
			Int("user_id", user.UserID).
			Msg("failed to record login time")
	}

	return &types.Token{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

func (s *Account) GetUsers(ctx context.Context) ([]*model.User, error) {
	return s.AccountRepo.GetUsers(ctx)
}

func (s *Account) GetUserByID(ctx context.Context, userID int) (*model.User, error) {
	return s.AccountRepo.GetUserByID(ctx, userID)
}
