package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/schema"
)

// NewTenement is the payload of POST /tenement/add/:type.
type NewTenement struct {
	Kind   domain.TenementKind
	Record any
}

// TenementHooks covers the tenement list and edit screens. List queries
// take an already encoded query string.
type TenementHooks struct {
	List     *Query[string, []domain.TenementListItem]
	SellList *Query[string, []domain.TenementSellListItem]
	RentList *Query[string, []domain.TenementRentListItem]

	Sell    *Query[string, domain.TenementSell]
	Rent    *Query[string, domain.TenementRent]
	Develop *Query[string, domain.TenementDevelop]
	Market  *Query[string, domain.TenementMarket]

	SaveSell    *Mutation[domain.TenementSell, api.None]
	SaveRent    *Mutation[domain.TenementRent, api.None]
	SaveDevelop *Mutation[domain.TenementDevelop, api.None]
	SaveMarket  *Mutation[domain.TenementMarket, api.None]

	Add    *Mutation[NewTenement, api.None]
	Delete *Mutation[string, api.None]
}

func NewTenementHooks(env Env) *TenementHooks {
	loud := env.with(WithAlert(MsgFetchFailed))
	return &TenementHooks{
		List:     listQuery[domain.TenementListItem](env, "tenement.list", "/tenements", domain.TenementListShape, loud),
		SellList: listQuery[domain.TenementSellListItem](env, "tenement.list_sell", "/tenements/sell", domain.TenementSellListShape, loud),
		RentList: listQuery[domain.TenementRentListItem](env, "tenement.list_rent", "/tenements/rent", domain.TenementRentListShape, loud),

		Sell: detailQuery(env, domain.KindSell, func(r *domain.TenementSell, id string) { r.TenementID = id }, loud),
		Rent: detailQuery(env, domain.KindRent, func(r *domain.TenementRent, id string) { r.TenementID = id }, loud),
		Develop: detailQuery(env, domain.KindDevelop, func(r *domain.TenementDevelop, id string) {
			r.TenementID = id
		}, loud),
		Market: detailQuery(env, domain.KindMarket, func(r *domain.TenementMarket, id string) { r.TenementID = id }, loud),

		SaveSell:    saveMutation(env, domain.KindSell, func(r domain.TenementSell) string { return r.TenementID }),
		SaveRent:    saveMutation(env, domain.KindRent, func(r domain.TenementRent) string { return r.TenementID }),
		SaveDevelop: saveMutation(env, domain.KindDevelop, func(r domain.TenementDevelop) string { return r.TenementID }),
		SaveMarket:  saveMutation(env, domain.KindMarket, func(r domain.TenementMarket) string { return r.TenementID }),

		Add: NewMutation("tenement.add", func(ctx context.Context, in NewTenement) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPost, path("/tenement/add", string(in.Kind)), in.Record)
		}, env.with()...),
		Delete: NewMutation("tenement.delete", func(ctx context.Context, id string) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodDelete, path("/delete/tenement", id), nil)
		}, env.with()...),
	}
}

func listQuery[T any](env Env, name, prefix string, shape schema.Shape, opts []Option) *Query[string, []T] {
	return NewQuery(name, func(ctx context.Context, q string) ([]T, error) {
		return api.Fetch[[]T](ctx, env.API, http.MethodGet, withQuery(prefix, q), nil, shape)
	}, opts...)
}

// detailQuery loads /tenement/edit/<kind>/:id. The id is not part of the
// response body, so it is copied in from the request.
func detailQuery[T any](env Env, kind domain.TenementKind, setID func(*T, string), opts []Option) *Query[string, T] {
	return NewQuery("tenement.get_"+string(kind), func(ctx context.Context, id string) (T, error) {
		rec, err := api.Fetch[T](ctx, env.API, http.MethodGet, path("/tenement/edit", string(kind), id), nil, domain.TenementShape(kind))
		if err != nil {
			return rec, err
		}
		setID(&rec, id)
		return rec, nil
	}, opts...)
}

func saveMutation[T any](env Env, kind domain.TenementKind, id func(T) string) *Mutation[T, api.None] {
	return NewMutation("tenement.save_"+string(kind), func(ctx context.Context, rec T) (api.None, error) {
		return api.None{}, api.Send(ctx, env.API, http.MethodPost, path("/tenement/edit", string(kind), id(rec)), rec)
	}, env.with()...)
}
