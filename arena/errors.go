package arena

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrIncorrectRegion is returned when an Ix is used against a Region other
// than the one that produced it. Only meaningful in diagnostic builds; in a
// non-diagnostic build such misuse is undefined but safe.
var ErrIncorrectRegion = errors.New("arena: index belongs to a different region")

// ErrEntryExpired is returned when the target of a handle was reclaimed by a
// collection.
var ErrEntryExpired = errors.New("arena: entry expired")

// ErrIndeterminable is returned when there isn't enough diagnostic data to
// tell a stale index apart from a legitimately empty slot.
var ErrIndeterminable = errors.New("arena: cannot determine index validity")

// ErrUnexpectedInternalState indicates an invariant inside the library was
// violated. It should never occur under correct user code; if it does, it is
// a bug in this package or a sign that a stored Ix outlived its Region.
var ErrUnexpectedInternalState = errors.New("arena: unexpected internal state")

func wrapf(base error, format string, a ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), base)
}

// internalPanic logs the diagnostic context at Error level, then panics.
// Reserved for inconsistencies the collector cannot safely continue past,
// e.g. a live object holding a stale index into the source store.
func internalPanic(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	log.WithField("component", "arena").Error(msg)
	panic(msg)
}
