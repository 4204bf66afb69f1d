// Package session is the client-side session store: it owns the bearer
// token and the cached user profile.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/auth"
	"maison/internal/structs"
	"maison/internal/texts"
	"maison/pkg/config"
	"maison/pkg/logger"
	sessionRepo "maison/pkg/repository/session"
	"maison/pkg/utils"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Config      config.IConfig
		Logger      logger.Logger
		Auth        auth.Client
		SessionRepo sessionRepo.Repo
	}

	Service interface {
		Register(ctx context.Context, req structs.RegisterRequest) (structs.AuthResponse, error)
		Login(ctx context.Context, req structs.LoginRequest) (structs.AuthResponse, error)
		Verify(ctx context.Context) (structs.User, error)
		Logout(ctx context.Context) error
		CurrentUser(ctx context.Context) (structs.User, bool)
		Token(ctx context.Context) (string, bool)
		PatchTelegram(ctx context.Context, telegramID int64, username string) error
	}

	service struct {
		auth        auth.Client
		sessionRepo sessionRepo.Repo
		logger      logger.Logger
		lang        utils.Lang
	}
)

func New(p Params) Service {
	return &service{
		auth:        p.Auth,
		sessionRepo: p.SessionRepo,
		logger:      p.Logger,
		lang:        texts.Lang(p.Config),
	}
}

func (s *service) validate(email, password string) error {
	if utils.StrEmpty(email) {
		return structs.Invalid("email", texts.Get(s.lang, texts.EmailRequired))
	}
	if password == "" {
		return structs.Invalid("password", texts.Get(s.lang, texts.PasswordRequired))
	}
	return nil
}

func (s *service) Register(ctx context.Context, req structs.RegisterRequest) (structs.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validate(req.Email, req.Password); err != nil {
		return structs.AuthResponse{}, err
	}

	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "->auth.Register", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	if err := s.sessionRepo.Save(ctx, resp.Token, resp.User); err != nil {
		s.logger.Error(ctx, "->sessionRepo.Save", zap.Error(err))
		return structs.AuthResponse{}, err
	}
	return resp, nil
}

func (s *service) Login(ctx context.Context, req structs.LoginRequest) (structs.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validate(req.Email, req.Password); err != nil {
		return structs.AuthResponse{}, err
	}

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "->auth.Login", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	if err := s.sessionRepo.Save(ctx, resp.Token, resp.User); err != nil {
		s.logger.Error(ctx, "->sessionRepo.Save", zap.Error(err))
		return structs.AuthResponse{}, err
	}
	return resp, nil
}

// Verify checks the stored token with the auth service. Any failure leaves
// neither the token nor the cached user behind.
func (s *service) Verify(ctx context.Context) (structs.User, error) {
	token, ok := s.Token(ctx)
	if !ok {
		s.clear(ctx)
		return structs.User{}, structs.ErrUnauthenticated
	}

	user, err := s.auth.Verify(ctx, token)
	if err != nil {
		s.clear(ctx)
		if !errors.Is(err, structs.ErrRemote) {
			s.logger.Error(ctx, "->auth.Verify", zap.Error(err))
			return structs.User{}, err
		}
		return structs.User{}, fmt.Errorf("%w: %s", structs.ErrInvalidSession, structs.Message(err))
	}

	if err := s.sessionRepo.SaveUser(ctx, user); err != nil {
		s.logger.Error(ctx, "->sessionRepo.SaveUser", zap.Error(err))
		s.clear(ctx)
		return structs.User{}, err
	}
	return user, nil
}

func (s *service) clear(ctx context.Context) {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		s.logger.Error(ctx, "->sessionRepo.Clear", zap.Error(err))
	}
}

func (s *service) Logout(ctx context.Context) error {
	err := s.sessionRepo.Clear(ctx)
	if err != nil {
		s.logger.Error(ctx, "->sessionRepo.Clear", zap.Error(err))
	}
	return err
}

func (s *service) CurrentUser(ctx context.Context) (structs.User, bool) {
	user, err := s.sessionRepo.User(ctx)
	if err != nil {
		if !errors.Is(err, structs.ErrNotFound) {
			s.logger.Warn(ctx, "->sessionRepo.User", zap.Error(err))
		}
		return structs.User{}, false
	}
	return user, true
}

func (s *service) Token(ctx context.Context) (string, bool) {
	token, err := s.sessionRepo.Token(ctx)
	if err != nil {
		if !errors.Is(err, structs.ErrNotFound) {
			s.logger.Warn(ctx, "->sessionRepo.Token", zap.Error(err))
		}
		return "", false
	}
	return token, true
}

// PatchTelegram records a freshly linked Telegram account on the cached
// profile. Nothing is written when no user is cached.
func (s *service) PatchTelegram(ctx context.Context, telegramID int64, username string) error {
	user, err := s.sessionRepo.User(ctx)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.ErrAuthRequired
		}
		s.logger.Error(ctx, "->sessionRepo.User", zap.Error(err))
		return err
	}

	user.TelegramID = &telegramID
	user.TelegramUsername = &username
	if err := s.sessionRepo.SaveUser(ctx, user); err != nil {
		s.logger.Error(ctx, "->sessionRepo.SaveUser", zap.Error(err))
		return err
	}
	return nil
}
