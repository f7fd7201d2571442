package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// runRecord captures one timed solve configuration of a bench session.
type runRecord struct {
	Name      string    `json:"name"`
	Backend   string    `json:"backend"`
	Systems   int       `json:"systems"`
	Rows      int       `json:"rows"`
	Iters     int       `json:"iters"`
	NsPerOp   float64   `json:"ns_per_op"`
	MBPerSec  float64   `json:"mb_per_sec"`
	RowsPerS  float64   `json:"rows_per_sec"`
	Timestamp time.Time `json:"timestamp"`
}

// sessionLog accumulates run records and rewrites the session file after
// every record, so a crashed session keeps what it measured.
type sessionLog struct {
	path    string
	records []runRecord
}

func newSessionLog(dir string) (*sessionLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	name := fmt.Sprintf("bench_%s.json", time.Now().Format("20060102_150405"))
	l := &sessionLog{
		path:    filepath.Join(dir, name),
		records: []runRecord{},
	}
	return l, l.flush()
}

func (l *sessionLog) add(r runRecord) error {
	r.Timestamp = time.Now()
	l.records = append(l.records, r)
	return l.flush()
}

func (l *sessionLog) flush() error {
	data, err := json.MarshalIndent(l.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(l.path, data, 0o644)
}
