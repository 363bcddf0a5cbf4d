package preset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type presetFile struct {
	Presets []Preset `toml:"preset"`
}

// LoadFile reads presets from a TOML file of [[preset]] tables. The built-in
// presets are included unless the file redefines them by name.
func LoadFile(path string) ([]Preset, error) {
	var f presetFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decoding presets %s: %w", path, err)
	}

	defined := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		defined[p.Name] = true
	}

	presets := f.Presets
	for _, p := range Builtin() {
		if !defined[p.Name] {
			presets = append(presets, p)
		}
	}
	return presets, nil
}

// Watch reloads registry from path whenever the file is written or
// re-created, until ctx is done. A reload that fails to parse or validate
// is logged and the previous presets stay in place.
//
// The directory is watched rather than the file so editors that replace the
// file on save keep triggering reloads.
func Watch(ctx context.Context, path string, registry *Registry, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(path)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				reload(path, registry, logger)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("preset watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}

func reload(path string, registry *Registry, logger *zap.Logger) {
	presets, err := LoadFile(path)
	if err == nil {
		err = registry.Replace(presets)
	}
	if err != nil {
		logger.Error("failed to reload presets", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("presets reloaded", zap.String("path", path), zap.Int("count", len(presets)))
}
