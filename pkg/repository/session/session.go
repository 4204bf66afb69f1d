// Package session persists the bearer token and user profile. It is the only
// writer of the auth_token and user keys.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/fx"

	"maison/internal/structs"
	"maison/pkg/storage"
)

var Module = fx.Provide(New)

const (
	KeyToken = "auth_token"
	KeyUser  = "user"
)

type Repo interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (structs.User, error)
	Save(ctx context.Context, token string, user structs.User) error
	SaveUser(ctx context.Context, user structs.User) error
	Clear(ctx context.Context) error
}

type Params struct {
	fx.In
	Storage storage.Storage
}

type repo struct {
	storage storage.Storage
}

func New(p Params) Repo {
	return &repo{storage: p.Storage}
}

func (r *repo) Token(ctx context.Context) (string, error) {
	token, err := r.storage.GetItem(ctx, KeyToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", structs.ErrNotFound
		}
		return "", fmt.Errorf("repo: failed get token: %w", err)
	}
	if token == "" {
		return "", structs.ErrNotFound
	}
	return token, nil
}

func (r *repo) User(ctx context.Context) (structs.User, error) {
	raw, err := r.storage.GetItem(ctx, KeyUser)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return structs.User{}, structs.ErrNotFound
		}
		return structs.User{}, fmt.Errorf("repo: failed get user: %w", err)
	}

	var user structs.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return structs.User{}, fmt.Errorf("repo: failed decode user: %w", err)
	}
	return user, nil
}

// Save writes the token and then the user. When either write fails both
// keys are removed, so a token never outlives its profile.
func (r *repo) Save(ctx context.Context, token string, user structs.User) error {
	if err := r.storage.SetItem(ctx, KeyToken, token); err != nil {
		return errors.Join(fmt.Errorf("repo: failed save token: %w", err), r.Clear(ctx))
	}
	if err := r.SaveUser(ctx, user); err != nil {
		return errors.Join(err, r.Clear(ctx))
	}
	return nil
}

func (r *repo) SaveUser(ctx context.Context, user structs.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("repo: failed encode user: %w", err)
	}
	if err := r.storage.SetItem(ctx, KeyUser, string(b)); err != nil {
		return fmt.Errorf("repo: failed save user: %w", err)
	}
	return nil
}

// Clear removes both keys; the second removal runs even if the first fails.
func (r *repo) Clear(ctx context.Context) error {
	return errors.Join(
		r.storage.RemoveItem(ctx, KeyToken),
		r.storage.RemoveItem(ctx, KeyUser),
	)
}
