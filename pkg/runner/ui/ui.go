package ui

import (
	"context"
	"errors"

	"tableflip.dev/tasklists/pkg/app"
	tuiapp "tableflip.dev/tasklists/pkg/tui/app"
)

// UI runs the interactive terminal interface.
type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("ui: no service")
	}
	return tuiapp.Run(ctx, u.Service)
}
