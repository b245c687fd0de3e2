package scan

// MaxResults is the number of networks a Result holds per scan cycle.
// Discoveries beyond this are dropped silently.
const MaxResults = 32

// Result accumulates the outcome of one scan cycle.
//
// A Result carries no locking of its own and is not safe for concurrent use.
// The requester owns it until it hands it to the scanner, the scan worker
// owns it until it signals completion, and the requester may read it only
// after that signal.
type Result struct {
	// Success is true once a scan cycle ran to completion.
	Success bool

	// ErrorCode carries the radio error code. Only meaningful while
	// Success is false.
	ErrorCode int32

	aps []AP
}

// Reset prepares the result for a new scan. It keeps the backing storage so
// a requester can reuse one Result across cycles.
func (r *Result) Reset() {
	r.Success = false
	r.ErrorCode = 0
	r.aps = r.aps[:0]
}

// Add appends a network in discovery order. It reports whether the network
// was stored; a full result drops it without error.
func (r *Result) Add(ap AP) bool {
	if len(r.aps) >= MaxResults {
		return false
	}
	r.aps = append(r.aps, ap)
	return true
}

// Full reports whether the result is at capacity.
func (r *Result) Full() bool {
	return len(r.aps) >= MaxResults
}

// Count returns the number of stored networks.
func (r *Result) Count() int {
	return len(r.aps)
}

// APs returns the stored networks in discovery order. The slice aliases the
// result's storage and is invalidated by the next Reset.
func (r *Result) APs() []AP {
	return r.aps
}
