package api

import (
	"context"

	"github.com/kleyson/appz-budget/internal/models"
)

type AuthAPI struct{ c *Client }

func (a AuthAPI) Login(ctx context.Context, email, password string) (models.Token, error) {
	var out models.Token
	err := a.c.post(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

func (a AuthAPI) Me(ctx context.Context) (models.User, error) {
	var out models.User
	err := a.c.get(ctx, "/auth/me", nil, &out)
	return out, err
}

func (a AuthAPI) ChangePassword(ctx context.Context, current, next string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := a.c.post(ctx, "/auth/change-password", models.PasswordChange{CurrentPassword: current, NewPassword: next}, &out)
	return out, err
}
