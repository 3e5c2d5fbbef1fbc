package camera

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultSettleDelay = 75 * time.Millisecond

// ConfigWatcher reloads a controller configuration file whenever it changes on disk.
// Editors often save in several writes, so reloads wait until the file has been quiet
// for the settle delay. Only the newest configuration is kept; the tick loop picks it up
// with Poll and applies it with OrbitController.SetConfig.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	settle  time.Duration

	Configs chan ControllerConfig
	Errors  chan error

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// ConfigWatcherOption is a functional option for configuring a ConfigWatcher.
type ConfigWatcherOption func(*ConfigWatcher)

// WithSettleDelay sets how long the file must stay unchanged before it is reloaded.
//
// Parameters:
//   - d: the settle delay
//
// Returns:
//   - ConfigWatcherOption: functional option to set the delay
func WithSettleDelay(d time.Duration) ConfigWatcherOption {
	return func(w *ConfigWatcher) {
		w.settle = d
	}
}

// WatchControllerConfig starts watching a YAML controller configuration.
// The containing directory is watched so editors that replace the file on save keep working.
//
// Parameters:
//   - path: path to the YAML file
//   - options: functional options to configure the watcher
//
// Returns:
//   - *ConfigWatcher: the running watcher
//   - error: error if the path cannot be resolved or watched
func WatchControllerConfig(path string, options ...ConfigWatcherOption) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve controller config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &ConfigWatcher{
		watcher: fw,
		path:    filepath.Clean(abs),
		settle:  defaultSettleDelay,
		Configs: make(chan ControllerConfig, 1),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *ConfigWatcher) Path() string {
	return w.path
}

// Poll returns the newest reloaded configuration without blocking.
//
// Returns:
//   - ControllerConfig: the reloaded configuration
//   - bool: false if nothing new was loaded since the last call
func (w *ConfigWatcher) Poll() (ControllerConfig, bool) {
	select {
	case cfg, ok := <-w.Configs:
		return cfg, ok
	default:
		return ControllerConfig{}, false
	}
}

// Close stops watching and closes the Configs and Errors channels.
//
// Returns:
//   - error: error from closing the underlying watcher
func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

func (w *ConfigWatcher) run() {
	defer func() {
		close(w.Configs)
		close(w.Errors)
		close(w.doneCh)
	}()

	var reload <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			reload = time.After(w.settle)
		case <-reload:
			reload = nil
			cfg, err := LoadControllerConfig(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

// publish replaces any configuration the consumer has not picked up yet.
func (w *ConfigWatcher) publish(cfg ControllerConfig) {
	select {
	case <-w.Configs:
	default:
	}
	w.Configs <- cfg
}

func (w *ConfigWatcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
