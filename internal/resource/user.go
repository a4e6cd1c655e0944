package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/domain"
)

// UserHooks covers account administration.
type UserHooks struct {
	List *Query[api.None, []domain.UserListItem]
	Get  *Query[string, domain.User]

	Create *Mutation[domain.User, api.None]
	Update *Mutation[domain.User, api.None]
	Delete *Mutation[string, api.None]
}

func NewUserHooks(env Env) *UserHooks {
	return &UserHooks{
		List: NewQuery("user.list", func(ctx context.Context, _ api.None) ([]domain.UserListItem, error) {
			return api.Fetch[[]domain.UserListItem](ctx, env.API, http.MethodGet, "/users", nil, domain.UserListShape)
		}, env.with()...),
		Get: NewQuery("user.get", func(ctx context.Context, id string) (domain.User, error) {
			return api.Fetch[domain.User](ctx, env.API, http.MethodGet, path("/user", id), nil, domain.UserShape)
		}, env.with()...),

		Create: NewMutation("user.create", func(ctx context.Context, u domain.User) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPost, "/user", u)
		}, env.with()...),
		Update: NewMutation("user.update", func(ctx context.Context, u domain.User) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPut, path("/user", u.UserID), u)
		}, env.with()...),
		Delete: NewMutation("user.delete", func(ctx context.Context, id string) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodDelete, path("/user", id), nil)
		}, env.with()...),
	}
}
