package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the configuration file into store whenever it changes,
// until ctx is done. The parent directory is watched so that editors which
// replace the file by rename are still picked up.
func Watch(ctx context.Context, loader *Loader, path string, store *Store, logger *zap.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("Failed to close config watcher", zap.Error(err))
			}
		}()
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
				cfg, err := loader.Load(abs)
				if err != nil {
					logger.Warn("Ignoring invalid config reload", zap.String("path", abs), zap.Error(err))
					continue
				}
				logger.Info("Configuration reloaded", zap.String("path", abs))
				store.Set(cfg)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
