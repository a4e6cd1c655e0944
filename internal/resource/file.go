package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
)

// FileHooks manages uploaded images.
type FileHooks struct {
	Delete *Mutation[string, api.None]
}

func NewFileHooks(env Env) *FileHooks {
	return &FileHooks{
		Delete: NewMutation("file.delete", func(ctx context.Context, name string) (api.None, error) {
			return api.None{}, api.Send(ctx, env.API, http.MethodDelete, path("/files/delete", name), nil)
		}, env.with()...),
	}
}
