package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/E3SM-Project/tridiag"
)

// cmdBench times batch solves on one or both strategies and writes a JSON
// session log alongside the console summary.
func cmdBench() {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	systems := fs.Int("systems", 4096, "systems per batch")
	rows := fs.Int("rows", 60, "rows per system")
	iters := fs.Int("iters", 50, "timed iterations per configuration")
	backendName := fs.String("backend", "", "backend to time (default: both)")
	logDir := fs.String("log-dir", "benchmark_logs", "JSON session log directory")
	fs.Parse(os.Args[2:])

	backends := []tridiag.Backend{tridiag.LaneParallel, tridiag.GroupParallel}
	if *backendName != "" {
		b, err := tridiag.ParseBackend(*backendName)
		if err != nil {
			log.Fatal(err)
		}
		if b != tridiag.Auto {
			backends = []tridiag.Backend{b}
		}
	}

	slog, err := newSessionLog(*logDir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("bench: %d systems x %d rows, %d iters, log %s\n", *systems, *rows, *iters, slog.path)

	for _, backend := range backends {
		s, err := tridiag.New(tridiag.WithBackend(backend))
		if err != nil {
			log.Fatal(err)
		}

		b := tridiag.GenerateBatch(*systems, *rows, 42)
		rhs := append([]float64(nil), b.RHS...)
		rec := timeSolve(fmt.Sprintf("general/%s", backend), *iters, *systems, *rows, 5*8, func() error {
			copy(b.RHS, rhs)
			return s.Solve(b)
		})
		rec.Backend = backend.String()
		if err := slog.add(rec); err != nil {
			log.Fatal(err)
		}

		c := tridiag.GenerateCoupledBatch(*systems, *rows, 42)
		crhs := append([]float64(nil), c.RHS...)
		rec = timeSolve(fmt.Sprintf("coupled/%s", backend), *iters, *systems, *rows, 4*8, func() error {
			copy(c.RHS, crhs)
			return s.SolveCoupled(c)
		})
		rec.Backend = backend.String()
		if err := slog.add(rec); err != nil {
			log.Fatal(err)
		}
	}
}

// timeSolve runs one warmup pass, then times iters passes. Each pass
// restores the right-hand sides before solving so every iteration does the
// same work on the same values. bytesPerRow counts the arrays a solve
// touches per row: five for the general form, four for the coupled form.
func timeSolve(name string, iters, systems, rows, bytesPerRow int, solve func() error) runRecord {
	if err := solve(); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := solve(); err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(start)

	n := systems * rows
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iters)
	bytesPerOp := float64(n * bytesPerRow)
	rec := runRecord{
		Name:     name,
		Systems:  systems,
		Rows:     rows,
		Iters:    iters,
		NsPerOp:  nsPerOp,
		MBPerSec: bytesPerOp / (nsPerOp / 1e9) / 1e6,
		RowsPerS: float64(n) / (nsPerOp / 1e9),
	}
	fmt.Printf("✓ %-28s %12.0f ns/op %10.1f MB/s %12.0f rows/s\n",
		rec.Name, rec.NsPerOp, rec.MBPerSec, rec.RowsPerS)
	return rec
}
