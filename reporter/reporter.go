package reporter

import (
	"sync"
	"time"

	"github.com/codeplox-dev/wifiscand/console"
	"github.com/codeplox-dev/wifiscand/scan"
	"github.com/codeplox-dev/wifiscand/scanner"
)

const (
	// DefaultInterval is the pause between two scan cycles.
	DefaultInterval = 20 * time.Second

	// DefaultTimeout bounds how long a cycle waits for its scan.
	DefaultTimeout = 30 * time.Second
)

// Requester runs one scan cycle into result, within timeout.
type Requester interface {
	Request(result *scan.Result, timeout time.Duration) error
}

type Config struct {
	Requester Requester
	Console   *console.Renderer
	Interval  time.Duration
	Timeout   time.Duration
	Logger    Logger
}

// Snapshot is a copy of the most recently completed scan, safe to keep
// while further cycles run.
type Snapshot struct {
	Taken     time.Time
	Success   bool
	ErrorCode int32
	Networks  []scan.AP
}

// Reporter periodically requests a scan and renders the outcome to the
// console. One result is reused across all cycles; a cycle that times out
// leaves the result to the worker and the next cycle re-requests it.
type Reporter struct {
	requester    Requester
	console      *console.Renderer
	interval     time.Duration
	timeout      time.Duration
	log          Logger
	mtx          sync.Mutex
	last         *Snapshot
	clients      map[uint32]*ScanClient
	nextClientID uint32
	done         chan struct{}
}

func New(config *Config) *Reporter {
	reporter := &Reporter{
		requester: config.Requester,
		console:   config.Console,
		interval:  config.Interval,
		timeout:   config.Timeout,
		clients:   make(map[uint32]*ScanClient),
		done:      make(chan struct{}),
	}

	if reporter.interval == 0 {
		reporter.interval = DefaultInterval
	}

	if reporter.timeout == 0 {
		reporter.timeout = DefaultTimeout
	}

	if config.Logger != nil {
		reporter.log = config.Logger
	} else {
		reporter.log = noopLogger{}
	}

	return reporter
}

// Run scans immediately and then once per interval, blocking until
// Shutdown or until the requester reports it was stopped.
func (r *Reporter) Run() error {
	r.console.Scanning(r.interval)

	var result scan.Result

	for {
		r.console.ScanStarting()

		err := r.requester.Request(&result, r.timeout)
		switch err {
		case nil:
			r.console.Result(&result)
			r.store(&result)
		case scanner.ErrTimeout:
			r.console.Timeout()
		case scanner.ErrStopped:
			return nil
		default:
			r.log.Errorf("Could not request scan: %v", err)
		}

		timer := time.NewTimer(r.interval)

		select {
		case <-timer.C:
		case <-r.done:
			timer.Stop()
			return nil
		}
	}
}

// Shutdown ends the loop. A cycle waiting on its scan finishes that wait
// first; stop the scanner to release it early.
func (r *Reporter) Shutdown() {
	close(r.done)
}

// LastScan returns the most recently completed scan, or nil before the
// first one.
func (r *Reporter) LastScan() *Snapshot {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.last
}

func (r *Reporter) store(result *scan.Result) {
	networks := make([]scan.AP, result.Count())
	copy(networks, result.APs())

	snapshot := &Snapshot{
		Taken:     time.Now(),
		Success:   result.Success,
		ErrorCode: result.ErrorCode,
		Networks:  networks,
	}

	r.mtx.Lock()
	r.last = snapshot

	// fire-and-forget: a client that is not keeping up misses snapshots
	// rather than stalling the scan loop
	for _, client := range r.clients {
		select {
		case client.Scans <- snapshot:
		default:
		}
	}

	r.mtx.Unlock()
}

// ScanClient receives a snapshot of every scan completed while it is
// subscribed.
type ScanClient struct {
	Scans    chan *Snapshot
	Id       uint32
	reporter *Reporter
}

func (r *Reporter) SubscribeScans() *ScanClient {
	client := &ScanClient{
		Scans:    make(chan *Snapshot, 4),
		reporter: r,
	}

	r.mtx.Lock()
	client.Id = r.nextClientID
	r.nextClientID++
	r.clients[client.Id] = client
	r.mtx.Unlock()

	return client
}

func (c *ScanClient) Cancel() {
	c.reporter.mtx.Lock()
	delete(c.reporter.clients, c.Id)
	c.reporter.mtx.Unlock()
}
