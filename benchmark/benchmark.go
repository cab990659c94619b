// benchmark.go
// Resource usage reporting for AMPscan tools.
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Report is one measured run.
type Report struct {
	Label         string
	Started       time.Time
	Host          string
	Elapsed       time.Duration
	MemUsed       float64 // MB still live after the run
	TotalAlloc    float64 // MB allocated during the run
	HeapAlloc     float64 // MB
	GCCycles      uint32
	CPUs          int
	GoroutinesIn  int
	GoroutinesOut int
}

const mb = 1024.0 * 1024.0

// Measure runs f and records its runtime and memory usage.
func Measure(label string, f func()) Report {
	r := Report{Label: label, Started: time.Now(), CPUs: runtime.NumCPU()}
	if host, err := os.Hostname(); err == nil {
		r.Host = host
	}

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	r.GoroutinesIn = runtime.NumGoroutine()
	start := time.Now()

	f()

	r.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	r.GoroutinesOut = runtime.NumGoroutine()

	// Alloc can shrink if a GC ran during f
	if memEnd.Alloc > memStart.Alloc {
		r.MemUsed = float64(memEnd.Alloc-memStart.Alloc) / mb
	}
	r.TotalAlloc = float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb
	r.HeapAlloc = float64(memEnd.HeapAlloc) / mb
	r.GCCycles = memEnd.NumGC - memStart.NumGC
	return r
}

// Print writes the report in the [Benchmark] line format.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", r.Label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", r.Started.Format(time.RFC1123))
	if r.Host != "" {
		fmt.Fprintln(w, "[Benchmark] Hostname:", r.Host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", r.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", r.MemUsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", r.TotalAlloc)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", r.HeapAlloc)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", r.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", r.CPUs)
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", r.GoroutinesIn, r.GoroutinesOut)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run wraps any function and prints its report to stderr, keeping stdout
// for the tool's own output.
func Run(label string, f func()) {
	Measure(label, f).Print(os.Stderr)
}
