/*
Package watch polls a few files for changes. The watch command uses it to
re-render a card source whenever the source or the host config is saved.
Polling works on any fs.FS and needs no platform notification API.
*/
package watch

import (
	"errors"
	"io/fs"
	"sort"
	"sync"
	"time"
)

const MinInterval = time.Millisecond * 20

var ErrClosed = errors.New("watcher is closed")

// Event represents a single file change.
type Event struct {
	Name string
	Op   Op
}

// Op describes a type of event
type Op uint32

const (
	Create Op = 1 << iota
	Write
	Remove
)

func (op Op) String() string {
	switch op {
	case Create:
		return "CREATE"
	case Write:
		return "WRITE"
	case Remove:
		return "REMOVE"
	}
	return "?"
}

// stamp is what the poller remembers about a file between scans.
type stamp struct {
	exists  bool
	modTime time.Time
	size    int64
}

// Poller watches files of an fs.FS by comparing their modification time
// and size on every scan.
type Poller struct {
	fsys   fs.FS
	files  map[string]stamp
	events chan Event
	errors chan error
	done   chan struct{}

	mu      sync.Mutex
	running bool
	closed  bool
}

func NewPoller(fsys fs.FS) *Poller {
	return &Poller{
		fsys:   fsys,
		files:  map[string]stamp{},
		events: make(chan Event),
		errors: make(chan error),
		done:   make(chan struct{}),
	}
}

func (p *Poller) stat(name string) (stamp, error) {
	fi, err := fs.Stat(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return stamp{}, nil
	}
	if err != nil {
		return stamp{}, err
	}
	return stamp{exists: true, modTime: fi.ModTime(), size: fi.Size()}, nil
}

// Add starts watching name. A file that does not exist yet is watched for
// creation.
func (p *Poller) Add(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	st, err := p.stat(name)
	if err != nil {
		return err
	}
	p.files[name] = st
	return nil
}

func (p *Poller) Remove(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.files, name)
}

// Watched returns the watched names in order.
func (p *Poller) Watched() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.files))
	for name := range p.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scan compares every watched file with the previous scan and returns the
// changes in name order.
func (p *Poller) Scan() ([]Event, []error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.files))
	for name := range p.files {
		names = append(names, name)
	}
	sort.Strings(names)

	var events []Event
	var errs []error
	for _, name := range names {
		old := p.files[name]
		cur, err := p.stat(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		switch {
		case !old.exists && cur.exists:
			events = append(events, Event{Name: name, Op: Create})
		case old.exists && !cur.exists:
			events = append(events, Event{Name: name, Op: Remove})
		case cur.exists && (!cur.modTime.Equal(old.modTime) || cur.size != old.size):
			events = append(events, Event{Name: name, Op: Write})
		}
		p.files[name] = cur
	}
	return events, errs
}

// Start polls every interval until Close is called.
func (p *Poller) Start(interval time.Duration) error {
	if interval < MinInterval {
		interval = MinInterval
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.running {
		p.mu.Unlock()
		return errors.New("watcher is already running")
	}
	p.running = true
	p.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return nil
		case <-ticker.C:
		}

		events, errs := p.Scan()
		for _, e := range events {
			select {
			case p.events <- e:
			case <-p.done:
				return nil
			}
		}
		for _, err := range errs {
			select {
			case p.errors <- err:
			case <-p.done:
				return nil
			}
		}
	}
}

func (p *Poller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.running = false
	close(p.done)
	return nil
}

func (p *Poller) Events() <-chan Event {
	return p.events
}

func (p *Poller) Errors() <-chan error {
	return p.errors
}
