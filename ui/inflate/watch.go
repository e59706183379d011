package inflate

import (
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sidenav/log"
)

const debounce = 100 * time.Millisecond

// Watcher reports layout identifiers whose files changed on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for layout changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// run reports a layout once its files have been quiet for the debounce
// interval, so a burst of writes yields one event carrying the final content.
func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	pending := make(map[string]time.Time)
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			id := LayoutID(event.Name)
			if id == "" {
				continue
			}
			log.InfoLog.Printf("layout %q changed (%s)", id, event.Op)
			pending[id] = time.Now().Add(debounce)
			if fire == nil {
				fire = time.After(debounce)
			}
		case now := <-fire:
			fire = nil
			for _, id := range due(pending, now) {
				delete(pending, id)
				select {
				case w.Events <- id:
				case <-w.closeCh:
					return
				}
			}
			if next, ok := earliest(pending); ok {
				fire = time.After(time.Until(next))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.WarningLog.Printf("layout watcher error dropped: %v", err)
			}
		case <-w.closeCh:
			return
		}
	}
}

// due returns the pending ids whose quiet period ended by now, sorted.
func due(pending map[string]time.Time, now time.Time) []string {
	var ids []string
	for id, at := range pending {
		if !now.Before(at) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func earliest(pending map[string]time.Time) (time.Time, bool) {
	var next time.Time
	for _, at := range pending {
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	return next, !next.IsZero()
}
