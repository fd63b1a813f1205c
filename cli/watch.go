package cli

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ka2n/tadoru/check"
	"github.com/ka2n/tadoru/log"
	"github.com/morikuni/failure/v2"
)

// debounceDelay groups rapid site-generator writes into one re-check.
const debounceDelay = 500 * time.Millisecond

// runWatch re-runs the check whenever the site tree changes. Issues do
// not terminate the loop; only configuration errors or cancellation do.
func runWatch(ctx context.Context, cfg check.Config, reportPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return failure.Wrap(err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, cfg.SiteDir); err != nil {
		return failure.Wrap(err)
	}

	if _, err := runOnce(ctx, cfg, reportPath); err != nil {
		return err
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}

	log.Info("watching for changes", "site", cfg.SiteDir)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories must be added before their contents settle
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, ev.Name)
				}
			}
			timer.Reset(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-timer.C:
			log.Info("site changed, re-checking")
			if _, err := runOnce(ctx, cfg, reportPath); err != nil {
				return err
			}
		}
	}
}

// watchTree registers root and every directory beneath it.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
