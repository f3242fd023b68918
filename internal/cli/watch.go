package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay debounces bursts of write events from editors.
const reloadDelay = 100 * time.Millisecond

// RunWatch runs the machine file, then reruns it every time the file
// changes, until ctx is done.
func RunWatch(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	logger, closeLog, err := CreateLogger(opts.Config.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	target, err := filepath.Abs(opts.MachinePath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.MachinePath, err)
	}
	logger.Info("Starting Watcher", "path", target)

	runOnce := func() {
		if err := RunFile(ctx, opts); err != nil && !domain.IsFault(err) && !isInterrupted(err) {
			printSystemMessage(opts.Stdout, "Error: %v", err)
		}
		printSystemMessage(opts.Stdout, "Waiting for changes...")
	}
	runOnce()

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("Machine file changed", "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "err", err)
		case <-reload:
			printSystemMessage(opts.Stdout, "Change detected in '%s'.", opts.MachinePath)
			runOnce()
		}
	}
}
