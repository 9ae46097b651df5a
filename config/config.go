// Package config loads the tunables for the arenabench workload harness
// (cmd/arenabench). Region itself takes no configuration — its constructor
// is parameterless, per spec — this only configures the benchmark driver
// built on top of it.
package config

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// C holds the tunables for a workload run.
type C struct {
	// InitialCapacity is the capacity the harness requests via Ensure
	// before the first allocation.
	InitialCapacity int

	// ObjectCount is how many objects a single round of the workload
	// allocates.
	ObjectCount int

	// RootFraction, out of 100, selects how many of ObjectCount receive a
	// Root rather than only a Weak.
	RootFraction int

	// CyclesPerRound bounds how many mutual-edge cycles the workload
	// wires up per round (spec §8 scenario 4).
	CyclesPerRound int

	// Rounds is how many alloc/gc rounds the harness runs.
	Rounds int

	// Diagnostics is read from the "diagnostics" key. arenabench does not
	// consult it, and it cannot flip the arenadiag build tag.
	Diagnostics bool

	// LogLevel is read from the "log-level" key. arenabench does not
	// consult it: its log level comes from the -verbosity flag.
	LogLevel string
}

// Default returns the harness's built-in tunables.
func Default() *C {
	return &C{
		InitialCapacity: 64,
		ObjectCount:     1000,
		RootFraction:    10,
		CyclesPerRound:  8,
		Rounds:          50,
		LogLevel:        "info",
	}
}

// Load reads tunables from a "key value" file, the same shape as the
// teacher's own config format: one directive per line, "#"-prefixed
// comments and blank lines ignored, first run of whitespace separates key
// from value. Unrecognized keys are an error, same as the teacher's.
func Load(path string) (*C, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config.Load %q", path)
	}
	defer func() { _ = f.Close() }()
	c, err := load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config.Load %q", path)
	}
	return c, nil
}

func load(r io.Reader) (*C, error) {
	c := Default()
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		i := strings.IndexAny(line, " \t")
		if i == -1 {
			return nil, errors.Errorf("load: no separator in %q", line)
		}
		key, val := line[:i], strings.TrimSpace(line[i:])
		switch key {
		case "initial-capacity":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "load: %q", line)
			}
			c.InitialCapacity = n
		case "object-count":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "load: %q", line)
			}
			c.ObjectCount = n
		case "root-fraction":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "load: %q", line)
			}
			c.RootFraction = n
		case "cycles-per-round":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "load: %q", line)
			}
			c.CyclesPerRound = n
		case "rounds":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "load: %q", line)
			}
			c.Rounds = n
		case "diagnostics":
			c.Diagnostics = val == "true"
		case "log-level":
			c.LogLevel = val
		default:
			return nil, errors.Errorf("load: unknown key %q", key)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "load")
	}
	return c, nil
}
