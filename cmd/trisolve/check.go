package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/E3SM-Project/tridiag"
	"github.com/E3SM-Project/tridiag/internal/fixture"
)

// cmdCheck reloads a fixture, re-solves its batch, and compares the fresh
// solutions against the stored ones. A divergence exits with code 3.
func cmdCheck() {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	in := fs.String("in", "", "input fixture path")
	coupled := fs.Bool("coupled", false, "check a coupled-form fixture")
	backendName := fs.String("backend", "", "backend to re-solve with")
	tolName := fs.String("tol", "default", "tolerance preset: default, strict or relaxed")
	fs.Parse(os.Args[2:])

	if *in == "" {
		fmt.Println("usage: trisolve check -in batch.trifix [-coupled] [-backend NAME] [-tol default]")
		os.Exit(1)
	}
	tol, err := toleranceByName(*tolName)
	if err != nil {
		log.Fatal(err)
	}
	backend, err := parseBackendArg(*backendName)
	if err != nil {
		log.Fatal(err)
	}
	s, err := tridiag.New(tridiag.WithBackend(backend))
	if err != nil {
		log.Fatal(err)
	}

	var result tridiag.VerificationResult
	if *coupled {
		c, want, err := fixture.ReadCoupled(*in)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.SolveCoupled(c); err != nil {
			log.Fatal(err)
		}
		result = tridiag.VerifyFloat64Array(want, c.RHS, tol)
	} else {
		b, want, err := fixture.ReadBatch(*in)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.Solve(b); err != nil {
			log.Fatal(err)
		}
		result = tridiag.VerifyFloat64Array(want, b.RHS, tol)
	}

	if !result.IsAcceptable(tol) {
		fmt.Fprintf(os.Stderr, "check %s (%s): FAILED\n%s\n", *in, s.Backend(), result.String())
		os.Exit(3)
	}
	fmt.Printf("check %s (%s): OK\n", *in, s.Backend())
}
