package arena

import "sync/atomic"

// regionNonceSource is the only process-wide state in this package: a
// monotonic counter handed out to each Region created under the diagnostic
// build so that an Ix can record which Region minted it. It is initialized
// once at process start and never reset, same lifecycle as the teacher's
// own process-lifetime counters.
var regionNonceSource uint64

func nextRegionNonce() uint64 {
	return atomic.AddUint64(&regionNonceSource, 1)
}
