package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/schema"
)

// NoticeTarget names the record a notice list hangs off.
type NoticeTarget struct {
	Scope    domain.NoticeScope
	ParentID string
}

// NoticeWrite is a batch of notices sent for one target.
type NoticeWrite struct {
	Target  NoticeTarget
	Notices []domain.Notice
}

// NoticeRef identifies one stored notice.
type NoticeRef struct {
	Scope domain.NoticeScope
	ID    string
}

var noticeListShape = schema.Array(domain.NoticeShape)

// NoticeHooks reads and writes the notice list of a tenement or collection.
type NoticeHooks struct {
	List   *Query[NoticeTarget, []domain.Notice]
	Create *Mutation[NoticeWrite, []domain.Notice]
	Update *Mutation[NoticeWrite, api.None]
	Delete *Mutation[NoticeRef, api.None]
}

func NewNoticeHooks(env Env) *NoticeHooks {
	return &NoticeHooks{
		List: NewQuery("notice.list", func(ctx context.Context, t NoticeTarget) ([]domain.Notice, error) {
			return api.Fetch[[]domain.Notice](ctx, env.API, http.MethodGet, path("/notices", t.ParentID, string(t.Scope)), nil, noticeListShape)
		}, env.with(WithAlert(MsgFetchFailed))...),
		Create: NewMutation("notice.create", func(ctx context.Context, w NoticeWrite) ([]domain.Notice, error) {
			return api.Fetch[[]domain.Notice](ctx, env.API, http.MethodPost, path("/notices", string(w.Target.Scope), w.Target.ParentID), w.Notices, noticeListShape)
		}, env.with()...),
		Update: NewMutation("notice.update", func(ctx context.Context, w NoticeWrite) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodPut, path("/notices", string(w.Target.Scope), w.Target.ParentID), w.Notices)
		}, env.with()...),
		Delete: NewMutation("notice.delete", func(ctx context.Context, r NoticeRef) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodDelete, path("/notices", r.ID, string(r.Scope)), nil)
		}, env.with()...),
	}
}

// SaveBatch sends a notice batch: new notices first, then updates, then
// deletions. It stops at the first failed call, which has already alerted.
func (h *NoticeHooks) SaveBatch(ctx context.Context, t NoticeTarget, b domain.NoticeBatch) error {
	if len(b.Create) > 0 {
		if _, err := h.Create.Run(ctx, NoticeWrite{Target: t, Notices: b.Create}); err != nil {
			return err
		}
	}
	if len(b.Update) > 0 {
		if _, err := h.Update.Run(ctx, NoticeWrite{Target: t, Notices: b.Update}); err != nil {
			return err
		}
	}
	for _, id := range b.Delete {
		if _, err := h.Delete.Run(ctx, NoticeRef{Scope: t.Scope, ID: id}); err != nil {
			return err
		}
	}
	return nil
}
