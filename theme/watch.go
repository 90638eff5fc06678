// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/material/grr"
	"github.com/fsnotify/fsnotify"
)

// Watch applies the settings file at path to t, and again each time the
// file changes, until ctx is done. It blocks, so it should typically be
// called in a separate goroutine. Errors reading the file are logged
// and the theme keeps its current state.
func Watch(ctx context.Context, path string, t *Theme) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory, as editors often replace the file
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	reload := func() {
		s, err := LoadSettings(path)
		if grr.Log(err) != nil {
			return
		}
		grr.Log(s.Apply(t))
	}
	reload()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("theme settings changed", "path", path, "op", event.Op)
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			grr.Log(err)
		}
	}
}
