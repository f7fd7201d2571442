// Command trisolve drives the batched tridiagonal solver from the command
// line: correctness smoke runs, throughput benchmarks, and fixture capture
// and regression checking.
package main

import (
	"fmt"
	"os"

	"github.com/E3SM-Project/tridiag"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "smoke":
		cmdSmoke()
	case "bench":
		cmdBench()
	case "capture":
		cmdCapture()
	case "check":
		cmdCheck()
	case "version":
		fmt.Println(tridiag.Version())
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("trisolve - batched tridiagonal solver driver")
	fmt.Println("usage: trisolve <command> [args]")
	fmt.Println("  smoke   [-seed N]                         cross-check both strategies over a shape sweep")
	fmt.Println("  bench   [-systems N] [-rows M] [-iters K] [-backend NAME] [-log-dir DIR]")
	fmt.Println("  capture -out FILE [-systems N] [-rows M] [-seed N] [-coupled] [-codec raw|lz4|zstd]")
	fmt.Println("  check   -in FILE [-coupled] [-backend NAME] [-tol default|strict|relaxed]")
	fmt.Println("  version                                   print the module version")
}

// parseBackendArg maps the -backend flag to solver options, resolving the
// empty string to Auto.
func parseBackendArg(name string) (tridiag.Backend, error) {
	if name == "" {
		return tridiag.Auto, nil
	}
	return tridiag.ParseBackend(name)
}

// toleranceByName maps the -tol flag to a preset.
func toleranceByName(name string) (tridiag.ToleranceConfig, error) {
	switch name {
	case "", "default":
		return tridiag.DefaultTolerance(), nil
	case "strict":
		return tridiag.StrictTolerance(), nil
	case "relaxed":
		return tridiag.RelaxedTolerance(), nil
	}
	return tridiag.ToleranceConfig{}, fmt.Errorf("unknown tolerance preset %q", name)
}
