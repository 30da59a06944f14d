// Package profiling accumulates per-frame CPU time by section name.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track starts timing name and returns the function that stops it.
//
//	defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call it at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Section is one named total.
type Section struct {
	Name string
	Dur  time.Duration
}

// Sections returns the current totals, slowest first.
func Sections() []Section {
	mu.Lock()
	list := make([]Section, 0, len(totals))
	for k, v := range totals {
		list = append(list, Section{Name: k, Dur: v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Dur != list[j].Dur {
			return list[i].Dur > list[j].Dur
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// TopN formats the n slowest sections, e.g. "renderer.Render:4.2ms, game.Tick:0.3ms".
func TopN(n int) string {
	list := Sections()
	if n < len(list) {
		list = list[:max(n, 0)]
	}
	parts := make([]string, len(list))
	for i, s := range list {
		ms := float64(s.Dur.Microseconds()) / 1000
		parts[i] = s.Name + ":" + strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
	}
	return strings.Join(parts, ", ")
}
