// Command arenabench drives workloads against an arena.Region at a scale
// the package's own unit tests don't attempt, exercising the capacity,
// cyclic-graph and idempotence properties from spec §8. It is a stress and
// verification harness, not a demonstration of the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jasoncarr0/moving-gc-arena/config"
	log "github.com/sirupsen/logrus"
)

var globalContext struct {
	configPath string
	logLevel   string
	gops       bool
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&globalContext.configPath, "config", "", "`path` to a workload config file; defaults built in if unset")
	var levels []string
	for _, l := range log.AllLevels {
		levels = append(levels, l.String())
	}
	fs.StringVar(&globalContext.logLevel, "verbosity", "info", "sets the log `level`, among "+strings.Join(levels, ", "))
	fs.BoolVar(&globalContext.gops, "gops", false, "start a gops agent so `gops` can attach to this process")
	return fs
}

func loadConfig() (*config.C, error) {
	if globalContext.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(globalContext.configPath)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: arenabench <run|verify> [flags]")
		os.Exit(2)
	}

	sub := os.Args[1]
	fs := newFlagSet(sub)
	if err := fs.Parse(os.Args[2:]); err != nil {
		log.Fatalf("could not parse flags: %v", err)
	}

	level, err := log.ParseLevel(globalContext.logLevel)
	if err != nil {
		log.Fatalf("invalid -verbosity: %v", err)
	}
	log.SetLevel(level)

	if globalContext.gops {
		gopsListen()
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	switch sub {
	case "run":
		runWorkload(cfg)
	case "verify":
		diff, err := verifyIdempotence(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if diff != "" {
			log.Fatalf("idempotence check failed:\n%s", diff)
		}
		log.Info("arenabench: idempotence check passed")
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q, want run or verify\n", sub)
		os.Exit(2)
	}
}
