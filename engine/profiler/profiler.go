package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a fixed interval. Software rasterization is
// allocation-heavy, so the alloc rate line is the first thing to watch when
// frame times regress.
type Profiler struct {
	frames         int
	windowStart    time.Time
	interval       time.Duration
	memStats       runtime.MemStats
	lastNumGC      uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with a 1 second reporting interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		windowStart: time.Now(),
		interval:    time.Second,
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the reporting interval has elapsed:
// FPS, average frame time, live heap, allocation rate, and GC runs since
// the last report.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frames++
	now := time.Now()
	elapsed := now.Sub(p.windowStart)
	if elapsed < p.interval {
		return false
	}

	fps := float64(p.frames) / elapsed.Seconds()
	frameMs := elapsed.Seconds() * 1000 / float64(p.frames)

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
	gcRuns := p.memStats.NumGC - p.lastNumGC

	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC runs: %d",
		fps, frameMs, heapMB, allocRateMB, gcRuns)

	p.frames = 0
	p.windowStart = now
	p.lastNumGC = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
