// Package config prints or writes the effective configuration.
package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/tasklists/pkg/store"
)

type Config struct {
	// Init writes the config to Dir instead of printing it.
	Init bool
	Dir  string

	Config *store.Config
	Out    io.Writer
}

func (n *Config) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}
	if n.Config == nil {
		var err error
		if n.Config, err = store.LoadConfig(); err != nil {
			return err
		}
	}

	if n.Init {
		dir := n.Dir
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, store.ConfigFileName)
		if err := store.WriteConfig(path, n.Config); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "Wrote", path)
		return err
	}

	b, err := n.Config.TOML()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
