package game

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Profiler watches the update rate and captures a CPU profile and an
// execution trace when it drops
type Profiler struct {
	mu              sync.Mutex
	log             *zap.SugaredLogger
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string

	// Update rate measured over windows of half a second
	rate        float64
	rateFrames  int
	rateElapsed time.Duration
	minRate     float64
	warmup      time.Duration
	uptime      time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, log *zap.SugaredLogger) *Profiler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Profiler{
		log:             log,
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		minRate:         55,
		warmup:          3 * time.Second, // Startup frames are always slow
	}
}

// Rate returns the last measured update rate
func (p *Profiler) Rate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}

// Observe records one update of dt. When a measuring window closes below the
// minimum rate a capture starts, labelled by reason.
func (p *Profiler) Observe(dt time.Duration, reason func() string) {
	p.mu.Lock()
	p.uptime += dt
	p.rateElapsed += dt
	p.rateFrames++
	if p.rateElapsed < 500*time.Millisecond {
		p.mu.Unlock()
		return
	}
	p.rate = float64(p.rateFrames) / p.rateElapsed.Seconds()
	p.rateFrames = 0
	p.rateElapsed = 0
	slow := p.rate < p.minRate && p.uptime >= p.warmup
	rate := p.rate
	p.mu.Unlock()

	if !slow {
		return
	}
	label := fmt.Sprintf("tps%.0f", rate)
	if reason != nil {
		label += "-" + reason()
	}
	if err := p.CaptureProfile(label); err != nil {
		p.log.Debugw("profile capture skipped", "reason", label, "err", err)
	}
}

// CaptureProfile starts a CPU profile and trace capture in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("slow-%s-%s", time.Now().Format("20060102-150405"), reason)
	p.log.Infow("update rate dropped, capturing profile", "reason", reason, "dir", p.profilesDir)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.record(baseName, ".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				p.log.Errorw("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.record(baseName, ".trace", trace.Start, trace.Stop); err != nil {
				p.log.Errorw("trace failed", "err", err)
			}
		}()
		wg.Wait()

		p.logMemStats(baseName)
	}()
	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// record writes one capture to baseName+ext, recording between start and stop
func (p *Profiler) record(baseName, ext string, start func(io.Writer) error, stop func()) error {
	path := filepath.Join(p.profilesDir, baseName+ext)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer out.Close()

	if err := start(out); err != nil {
		return fmt.Errorf("begin %s: %w", ext, err)
	}
	time.Sleep(p.captureDuration)
	stop()

	p.log.Infow("capture written", "path", path)
	return nil
}

func (p *Profiler) logMemStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Infow("capture finished",
		"name", baseName,
		"alloc_kb", m.Alloc/1024,
		"total_alloc_kb", m.TotalAlloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects)
}
