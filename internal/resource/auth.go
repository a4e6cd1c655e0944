package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/domain"
)

// Auth groups the login, logout and role hooks.
type Auth struct {
	env Env

	Login *Mutation[domain.Credentials, domain.LoginToken]
	Role  *Query[api.None, domain.Role]
}

func NewAuth(env Env) *Auth {
	a := &Auth{env: env}
	a.Login = NewMutation("auth.login", a.login, env.with(WithAlert(MsgLoginFailed))...)
	a.Role = NewQuery("auth.role", func(ctx context.Context, _ api.None) (domain.Role, error) {
		return api.Fetch[domain.Role](ctx, env.API, http.MethodGet, "/user/auth", nil, domain.RoleShape)
	}, env.with(WithAlert(MsgFetchFailed))...)
	return a
}

func (a *Auth) login(ctx context.Context, cred domain.Credentials) (domain.LoginToken, error) {
	tok, err := api.Fetch[domain.LoginToken](ctx, a.env.API, http.MethodPost, "/user/login", cred, domain.LoginTokenShape)
	if err != nil {
		return domain.LoginToken{}, err
	}
	if err := a.env.Session.Login(ctx, tok.Token, cred.UserEmail); err != nil {
		return domain.LoginToken{}, err
	}
	return tok, nil
}

// IsLogin reports whether the shared session holds a token.
func (a *Auth) IsLogin() bool {
	return a.env.Session.IsLoggedIn()
}

// Logout discards the token. No server call is involved.
func (a *Auth) Logout(ctx context.Context) error {
	return a.env.Session.Logout(ctx)
}
