package log

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// frameWindow is how many recent frames are kept for percentiles.
const frameWindow = 128

// slowFrame is one frame at 60fps.
const slowFrame = 16 * time.Millisecond

// FrameProfiler collects timings while debugging is on: whole frames, each
// panel's render, and each pan gesture from its first claimed move to release.
type FrameProfiler struct {
	mu sync.Mutex

	frames    [frameWindow]time.Duration
	next      int
	filled    bool
	numFrames int64
	slow      int64

	panels map[string]*PanelTiming

	pans      int64
	opened    int64
	longest   time.Duration
	panStart  time.Time
	panActive bool
}

// PanelTiming accumulates render times for one panel role.
type PanelTiming struct {
	Role    string
	Renders int64
	Total   time.Duration
	Max     time.Duration
}

var profiler = newFrameProfiler()

func newFrameProfiler() *FrameProfiler {
	return &FrameProfiler{panels: make(map[string]*PanelTiming)}
}

// Profiler returns the process-wide profiler.
func Profiler() *FrameProfiler {
	return profiler
}

// TimePanel starts timing a panel render; call the result when done.
func (p *FrameProfiler) TimePanel(role string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		p.mu.Lock()
		defer p.mu.Unlock()
		t := p.panels[role]
		if t == nil {
			t = &PanelTiming{Role: role}
			p.panels[role] = t
		}
		t.Renders++
		t.Total += elapsed
		if elapsed > t.Max {
			t.Max = elapsed
		}
	}
}

// RecordFrame records one full View.
func (p *FrameProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frames[p.next] = elapsed
	p.next = (p.next + 1) % frameWindow
	if p.next == 0 {
		p.filled = true
	}
	p.numFrames++
	if elapsed > slowFrame {
		p.slow++
		trace("[PROFILE] ", "slow frame %v", elapsed)
	}
}

// PanStarted marks the beginning of a drag.
func (p *FrameProfiler) PanStarted() {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.panStart = time.Now()
	p.panActive = true
}

// PanEnded closes the drag begun by PanStarted. Calls without a matching
// start are ignored.
func (p *FrameProfiler) PanEnded(open bool) {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.panActive {
		return
	}
	p.panActive = false
	p.pans++
	if open {
		p.opened++
	}
	if d := time.Since(p.panStart); d > p.longest {
		p.longest = d
	}
}

// recent returns the frame window in no particular order.
func (p *FrameProfiler) recent() []time.Duration {
	if p.filled {
		return append([]time.Duration(nil), p.frames[:]...)
	}
	return append([]time.Duration(nil), p.frames[:p.next]...)
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	i := int(q * float64(len(sorted)-1))
	return sorted[i]
}

// Report formats everything collected so far. It is empty when debugging
// is off.
func (p *FrameProfiler) Report() string {
	if !DebugEnabled {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n=== Frame Profile ===\n")
	fmt.Fprintf(&b, "frames: %d (slow: %d)\n", p.numFrames, p.slow)

	recent := p.recent()
	sort.Slice(recent, func(i, j int) bool { return recent[i] < recent[j] })
	if len(recent) > 0 {
		fmt.Fprintf(&b, "last %d: p50=%v p95=%v max=%v\n",
			len(recent), percentile(recent, 0.5), percentile(recent, 0.95), recent[len(recent)-1])
	}

	fmt.Fprintf(&b, "pans: %d (ended open: %d, longest: %v)\n", p.pans, p.opened, p.longest)

	roles := make([]string, 0, len(p.panels))
	for role := range p.panels {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		t := p.panels[role]
		fmt.Fprintf(&b, "  %s: renders=%d avg=%v max=%v\n",
			role, t.Renders, t.Total/time.Duration(t.Renders), t.Max)
	}
	return b.String()
}

// Reset drops everything collected.
func (p *FrameProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = [frameWindow]time.Duration{}
	p.next, p.filled = 0, false
	p.numFrames, p.slow = 0, 0
	p.panels = make(map[string]*PanelTiming)
	p.pans, p.opened, p.longest = 0, 0, 0
	p.panActive = false
}
