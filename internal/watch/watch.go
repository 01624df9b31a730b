// Package watch monitors an inbox directory for new ad dump files and
// hands each settled file to a handler.
package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce delays handling so a file still being written settles first.
const debounce = 500 * time.Millisecond

// Handler processes one ad dump file dropped into the inbox.
type Handler func(path string)

// Watch blocks, watching dir for created or written .json, .jsonl, and
// .jsonl.zst files, until ctx is cancelled. Events for the same path
// within the debounce window collapse into one handler call.
func Watch(ctx context.Context, dir string, fn Handler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	pending := make(map[string]*time.Timer)
	fired := make(chan string)

	for {
		select {
		case <-ctx.Done():
			for _, t := range pending {
				t.Stop()
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !wantFile(event.Name) {
				continue
			}
			path := event.Name
			if t, exists := pending[path]; exists {
				t.Reset(debounce)
				continue
			}
			pending[path] = time.AfterFunc(debounce, func() {
				select {
				case fired <- path:
				case <-ctx.Done():
				}
			})

		case path := <-fired:
			delete(pending, path)
			fn(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
}

func wantFile(path string) bool {
	return strings.HasSuffix(path, ".json") ||
		strings.HasSuffix(path, ".jsonl") ||
		strings.HasSuffix(path, ".jsonl.zst")
}
