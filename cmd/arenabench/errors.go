package main

import "fmt"

func errIdempotenceLenMismatch(before, after int) error {
	return fmt.Errorf("arenabench: gc() is not idempotent: len %d before second gc, %d after", before, after)
}
