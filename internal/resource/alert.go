package resource

import "context"

// User-facing messages.
const (
	MsgOperationFailed = "操作失敗"
	MsgFetchFailed     = "取得資料失敗"
	MsgSaved           = "儲存成功"
	MsgLoginFailed     = "帳號或密碼錯誤"
)

// Alerter shows a blocking message to the user. Alert returns once the
// message has been acknowledged.
type Alerter interface {
	Alert(ctx context.Context, msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(ctx context.Context, msg string)

func (f AlertFunc) Alert(ctx context.Context, msg string) { f(ctx, msg) }

// NopAlerter swallows alerts.
type NopAlerter struct{}

func (NopAlerter) Alert(context.Context, string) {}
