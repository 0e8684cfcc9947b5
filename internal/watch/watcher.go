// Package watch regenerates views when the configuration or a watched
// source directory changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long to wait after the last write before
// regenerating, so editor save bursts trigger one run.
const debounceDelay = 500 * time.Millisecond

// Watcher watches the config file and source directories and triggers
// regeneration after changes settle.
type Watcher struct {
	watcher    *fsnotify.Watcher
	regenerate func() error
	report     func(err error)
}

// New creates a watcher over the given paths. Paths that do not exist are
// skipped. regenerate runs after each settled change; report receives its
// error, if any.
func New(paths []string, regenerate func() error, report func(err error)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	for _, p := range paths {
		if p == "" {
			continue
		}

		if _, err := os.Stat(p); err != nil {
			continue
		}

		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %q: %w", p, err)
		}
	}

	return &Watcher{
		watcher:    watcher,
		regenerate: regenerate,
		report:     report,
	}, nil
}

// Run watches for changes and regenerates. Blocks until ctx is cancelled.
// Regeneration runs in this goroutine, so runs never overlap; events
// arriving during a run queue up and schedule the next one.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}

			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !relevant(event) {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C
				continue
			}

			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}

			debounce.Reset(debounceDelay)

		case <-fire:
			debounce = nil
			fire = nil

			w.report(w.regenerate())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.report(fmt.Errorf("watch error: %w", err))
		}
	}
}

// relevant filters events down to Go source and config writes; generated
// output and editor temp files would otherwise retrigger forever.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
		return false
	}

	name := event.Name

	return strings.HasSuffix(name, ".go") ||
		strings.HasSuffix(name, ".yaml") ||
		strings.HasSuffix(name, ".yml")
}
