// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     config
// Description: Reload of the configuration file on change
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// ChangeFunc receives a freshly loaded configuration
type ChangeFunc func(*Config)

// ErrorFunc receives errors from reloading or from the watcher itself
type ErrorFunc func(error)

// Watch reloads the file at path whenever it changes and passes the result
// to onChange. The parent directory is watched so that editors replacing the
// file atomically are noticed. Watching stops when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange ChangeFunc, onError ErrorFunc) error {
	if path == "" {
		return rwerror.New("no config file to watch").
			WithCode(rwerror.CodeMissingConfig).
			WithOperation("config.Watch")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return rwerror.Wrap(err, "failed to resolve config path").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return rwerror.Wrap(err, "failed to create watcher").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return rwerror.Wrap(err, "failed to watch config directory").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("path", abs)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				if onChange != nil {
					onChange(cfg)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	return nil
}
