package dash

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDelay = 250 * time.Millisecond

// Watcher renders a dashboard and renders it again each time its definition
// or one of its datasets changes. Charts are updated in place when only
// their data changed.
type Watcher struct {
	file    string
	delay   time.Duration
	logger  *zap.Logger
	options []Option

	// Reloaded, when set, is called after every reload attempt with its
	// result.
	Reloaded func(error)
}

func NewWatcher(file string, delay time.Duration, options ...Option) *Watcher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Watcher{
		file:    file,
		delay:   delay,
		logger:  dashLogger(options),
		options: options,
	}
}

// Watch blocks until ctx is done. Only the first rendering has to succeed:
// later failures are logged and the previous charts are kept.
func (w *Watcher) Watch(ctx context.Context) error {
	cfg, err := Load(w.file)
	if err != nil {
		return err
	}
	board := New(cfg, w.options...)
	if err := board.Render(); err != nil {
		return err
	}
	w.logger.Info("dashboard rendered", zap.String("file", w.file))

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	watched := make(map[string]struct{})
	w.follow(fw, watched, cfg)

	var (
		timer = time.NewTimer(w.delay)
		fire  <-chan time.Time
	)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped", zap.String("file", w.file))
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if _, ok := watched[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("file changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(w.delay)
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			err := w.reload(board)
			if err == nil {
				w.follow(fw, watched, board.Config)
			}
			if w.Reloaded != nil {
				w.Reloaded(err)
			}
		}
	}
}

func (w *Watcher) reload(board *Dashboard) error {
	cfg, err := Load(w.file)
	if err != nil {
		w.logger.Error("invalid dashboard", zap.String("file", w.file), zap.Error(err))
		return err
	}
	if err := board.Reload(cfg); err != nil {
		w.logger.Error("reload failed", zap.String("file", w.file), zap.Error(err))
		return err
	}
	w.logger.Info("dashboard reloaded", zap.String("file", w.file))
	return nil
}

// follow watches the directories of every source of cfg. Directories are
// watched instead of files since editors often replace a file when saving
// it.
func (w *Watcher) follow(fw *fsnotify.Watcher, watched map[string]struct{}, cfg Config) {
	dirs := make(map[string]struct{})
	for _, d := range fw.WatchList() {
		dirs[d] = struct{}{}
	}
	clear(watched)
	for _, file := range cfg.Sources() {
		file = filepath.Clean(file)
		watched[file] = struct{}{}

		dir := filepath.Dir(file)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("can not watch directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		dirs[dir] = struct{}{}
	}
}
