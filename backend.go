package tridiag

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Backend selects the execution strategy of a Solver.
type Backend int

const (
	// Auto picks the best strategy for the host at initialization time.
	Auto Backend = iota

	// LaneParallel runs the sequential Thomas recurrences over lane groups
	// of systems, vectorizing across the batch. This is the fast shape on
	// CPUs.
	LaneParallel

	// GroupParallel runs parallel cyclic reduction with one execution unit
	// per row of a system, the shape used on massively parallel hardware.
	GroupParallel
)

// String returns the canonical backend name
func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case LaneParallel:
		return "cpu-vectorized"
	case GroupParallel:
		return "accelerator-parallel"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a canonical backend name to its Backend value
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto":
		return Auto, nil
	case "cpu-vectorized":
		return LaneParallel, nil
	case "accelerator-parallel":
		return GroupParallel, nil
	}
	return Auto, NewBackendError("ParseBackend", fmt.Sprintf("unknown backend %q", name))
}

// autoBackend resolves Auto for the host. Hosts without device offload get
// the vectorized CPU strategy.
func autoBackend() Backend {
	return LaneParallel
}

// engine is the execution strategy bound to a Solver at construction.
// Binding happens once in New so the solve path carries no selection
// branches.
type engine interface {
	solve(b Batch)
	solveCoupled(c CoupledBatch)
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithBackend pins the execution strategy instead of resolving Auto.
func WithBackend(b Backend) Option {
	return func(s *Solver) { s.backend = b }
}

// WithWorkers sets the number of worker goroutines a solve fans out across.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithLaneWidth overrides the detected SIMD lane width of the sequential
// strategy.
func WithLaneWidth(w int) Option {
	return func(s *Solver) { s.lanes = w }
}

// Solver solves batches of tridiagonal systems. The execution strategy,
// lane width and worker count are fixed when the Solver is created.
type Solver struct {
	backend Backend
	lanes   int
	workers int
	eng     engine
}

// New creates a Solver. Without options it detects the host lane width,
// uses one worker per CPU, and resolves Auto to the vectorized strategy.
//
// Example:
//
//	s, err := tridiag.New(tridiag.WithBackend(tridiag.GroupParallel))
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = s.Solve(batch)
func New(opts ...Option) (*Solver, error) {
	s := &Solver{
		backend: Auto,
		lanes:   DetectLaneWidth(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.lanes < 1 {
		return nil, ErrInvalidLaneWidth
	}
	if s.workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	if s.backend == Auto {
		s.backend = autoBackend()
	}

	switch s.backend {
	case LaneParallel:
		s.eng = laneEngine{lanes: s.lanes, workers: s.workers}
	case GroupParallel:
		s.eng = groupEngine{workers: s.workers}
	default:
		return nil, NewBackendError("New", fmt.Sprintf("unknown backend %q", s.backend))
	}
	return s, nil
}

// Backend returns the resolved execution strategy.
func (s *Solver) Backend() Backend {
	return s.backend
}

// LaneWidth returns the lane width of the sequential strategy.
func (s *Solver) LaneWidth() int {
	return s.lanes
}

// Workers returns the worker goroutine count.
func (s *Solver) Workers() int {
	return s.workers
}

// Solve solves every system in the batch, overwriting RHS with the
// solutions. Sub, Diag and Super are left untouched, so a batch can be
// re-solved with fresh right-hand sides. A batch of zero systems is a no-op.
func (s *Solver) Solve(b Batch) error {
	if err := b.validate("Solve"); err != nil {
		return err
	}
	s.eng.solve(b)
	return nil
}

// SolveCoupled solves every system in the coupled batch, overwriting RHS
// with the solutions. G and H are left untouched.
func (s *Solver) SolveCoupled(c CoupledBatch) error {
	if err := c.validate("SolveCoupled"); err != nil {
		return err
	}
	s.eng.solveCoupled(c)
	return nil
}

// Global default solver
var (
	defaultSolver *Solver
	defaultOnce   sync.Once
)

// Default returns the shared solver built with default options.
func Default() *Solver {
	defaultOnce.Do(func() {
		var err error
		defaultSolver, err = New()
		if err != nil {
			// New cannot fail without options
			panic(err)
		}
	})
	return defaultSolver
}

// Solve solves the batch with the default solver.
//
// Example:
//
//	b := tridiag.NewBatch(nCells, nLayers)
//	// ... fill b.Sub, b.Diag, b.Super, b.RHS ...
//	if err := tridiag.Solve(b); err != nil {
//		log.Fatal(err)
//	}
//	// b.RHS now holds the solutions
func Solve(b Batch) error {
	return Default().Solve(b)
}

// SolveCoupled solves the coupled batch with the default solver.
func SolveCoupled(c CoupledBatch) error {
	return Default().SolveCoupled(c)
}
