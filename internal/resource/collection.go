package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/domain"
)

// CollectionHooks covers the collection list and edit screens.
type CollectionHooks struct {
	List *Query[api.None, []domain.CollectionListItem]
	Get  *Query[string, domain.Collection]

	Create      *Mutation[domain.Collection, api.None]
	Update      *Mutation[domain.Collection, api.None]
	Delete      *Mutation[string, api.None]
	SaveNotices *Mutation[[]domain.Notice, api.None]
}

func NewCollectionHooks(env Env) *CollectionHooks {
	return &CollectionHooks{
		List: NewQuery("collection.list", func(ctx context.Context, _ api.None) ([]domain.CollectionListItem, error) {
			return api.Fetch[[]domain.CollectionListItem](ctx, env.API, http.MethodGet, "/collections", nil, domain.CollectionListShape)
		}, env.with()...),
		Get: NewQuery("collection.get", func(ctx context.Context, id string) (domain.Collection, error) {
			c, err := api.Fetch[domain.Collection](ctx, env.API, http.MethodGet, path("/collection", id), nil, domain.CollectionShape)
			if err != nil {
				return c, err
			}
			c.CollectionID = id
			return c, nil
		}, env.with()...),

		Create: NewMutation("collection.create", func(ctx context.Context, c domain.Collection) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPost, "/collections", c)
		}, env.with()...),
		Update: NewMutation("collection.update", func(ctx context.Context, c domain.Collection) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPut, path("/collection", c.CollectionID), c)
		}, env.with()...),
		Delete: NewMutation("collection.delete", func(ctx context.Context, id string) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodDelete, path("/collection", id), nil)
		}, env.with()...),
		SaveNotices: NewMutation("collection.save_notices", func(ctx context.Context, notices []domain.Notice) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPost, "/collection/notices", notices)
		}, env.with()...),
	}
}
