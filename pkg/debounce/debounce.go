package debounce

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending timer per key. Triggering a key again before its
// delay elapses cancels the pending call and starts the delay over.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[string]*entry
	seq    uint64
	wg     sync.WaitGroup
}

type entry struct {
	timer *time.Timer
	gen   uint64
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[string]*entry),
	}
}

// Trigger schedules fn for key after the quiescence delay.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.timers[key]; ok {
		if e.timer.Stop() {
			d.wg.Done()
		}
	}

	d.seq++
	gen := d.seq

	e := &entry{gen: gen}
	d.timers[key] = e

	d.wg.Add(1)
	e.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		cur, ok := d.timers[key]
		if !ok || cur.gen != gen {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()

		fn()
	})
}

// Cancel drops the pending call for key. It reports whether one was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.timers[key]
	if !ok {
		return false
	}

	delete(d.timers, key)

	if e.timer.Stop() {
		d.wg.Done()
	}

	return true
}

func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.timers[key]

	return ok
}

// Stop cancels every pending call and waits for callbacks already running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	for key, e := range d.timers {
		if e.timer.Stop() {
			d.wg.Done()
		}

		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
