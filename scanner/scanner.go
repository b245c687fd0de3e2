package scanner

import (
	"sync"
	"time"

	"github.com/codeplox-dev/wifiscand/led"
	"github.com/codeplox-dev/wifiscand/radio"
	"github.com/codeplox-dev/wifiscand/scan"
	"github.com/go-errors/errors"
)

const (
	// DefaultQueueLen bounds how many requests may wait for the worker.
	DefaultQueueLen = 4

	// pollInterval is how often the worker checks whether a running scan
	// has finished.
	pollInterval = 50 * time.Millisecond

	// blinkPeriod is the toggle period of the busy indication.
	blinkPeriod = 50 * time.Millisecond
)

var (
	// ErrTimeout is returned when a scan did not complete within the
	// caller's timeout. The scan itself keeps running to completion.
	ErrTimeout = errors.New("scan timed out")

	// ErrStopped is returned for requests made during or after Stop.
	ErrStopped = errors.New("scanner stopped")
)

type Config struct {
	Radio    radio.Radio
	Led      *led.Controller
	QueueLen int
	Logger   Logger
}

// request pairs a result with the channel the worker closes once that
// result is complete. Each request carries its own completion channel,
// so any number of requesters can wait independently.
type request struct {
	result *scan.Result
	done   chan struct{}
}

// Scanner serializes scan requests onto a single worker that drives the
// radio and the busy indication. Requests travel through a bounded queue;
// the worker runs each scan cycle to completion and is never cancelled,
// even when the requester gives up waiting.
type Scanner struct {
	radio    radio.Radio
	led      *led.Controller
	log      Logger
	requests chan request
	quit     chan struct{}
	wg       sync.WaitGroup
}

func New(config *Config) *Scanner {
	queueLen := config.QueueLen
	if queueLen == 0 {
		queueLen = DefaultQueueLen
	}

	scanner := &Scanner{
		radio:    config.Radio,
		led:      config.Led,
		requests: make(chan request, queueLen),
		quit:     make(chan struct{}),
	}

	if config.Logger != nil {
		scanner.log = config.Logger
	} else {
		scanner.log = noopLogger{}
	}

	return scanner
}

func (s *Scanner) Start() error {
	s.wg.Add(1)
	go s.worker()

	return nil
}

// Stop ends the worker and releases all waiting requesters with
// ErrStopped. A scan cycle that is already running finishes first.
func (s *Scanner) Stop() error {
	close(s.quit)
	s.wg.Wait()

	return nil
}

// Request submits result for one scan cycle and blocks until the cycle
// completes or timeout elapses. On ErrTimeout the worker still owns the
// result and will finish writing it; the caller must not touch the result
// until a later request for the same result completes. Re-requesting the
// same result is safe, as the single worker serializes all cycles.
func (s *Scanner) Request(result *scan.Result, timeout time.Duration) error {
	req := request{
		result: result,
		done:   make(chan struct{}),
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case s.requests <- req:
	case <-s.quit:
		return ErrStopped
	case <-timer.C:
		return ErrTimeout
	}

	select {
	case <-req.done:
		return nil
	case <-s.quit:
		// the cycle may have completed right before the stop
		select {
		case <-req.done:
			return nil
		default:
		}

		return ErrStopped
	case <-timer.C:
		return ErrTimeout
	}
}

func (s *Scanner) worker() {
	defer s.wg.Done()

	for {
		select {
		case req := <-s.requests:
			s.scan(req.result)
			close(req.done)
		case <-s.quit:
			return
		}
	}
}

// scan runs one full cycle on the worker: reset the result, indicate
// busy, start the radio, poll until it goes idle, indicate idle again.
// Only a synchronous start failure marks the result failed; a started
// scan always ends successful with whatever was collected.
func (s *Scanner) scan(result *scan.Result) {
	result.Reset()

	if err := s.led.StartBlink(blinkPeriod); err != nil {
		s.log.Warnf("Could not start busy indication: %v", err)
	}

	err := s.radio.StartScan(func(discovery radio.Discovery) {
		s.collect(result, discovery)
	})
	if err != nil {
		result.ErrorCode = radio.ErrorCode(err)

		s.log.Errorf("Could not start scan: %v", err)

		if err := s.led.StopBlink(); err != nil {
			s.log.Warnf("Could not stop busy indication: %v", err)
		}

		return
	}

	for s.radio.Active() {
		time.Sleep(pollInterval)
	}

	if err := s.led.StopBlink(); err != nil {
		s.log.Warnf("Could not stop busy indication: %v", err)
	}

	result.Success = true
}

// collect files one discovery into the result. Hidden networks report an
// empty name and are filtered out; discoveries past the result's capacity
// are dropped. Neither condition is an error.
func (s *Scanner) collect(result *scan.Result, discovery radio.Discovery) {
	if discovery.SSID == "" {
		s.log.Debugf("Skipping hidden network %v", discovery.BSSID)
		return
	}

	ssid := discovery.SSID
	if len(ssid) > scan.MaxSSIDLen {
		ssid = ssid[:scan.MaxSSIDLen]
	}

	ap := scan.AP{
		SSID:    ssid,
		BSSID:   discovery.BSSID,
		RSSI:    discovery.RSSI,
		Channel: discovery.Channel,
		Auth:    scan.AuthModeFromMask(discovery.AuthMask),
	}

	if !result.Add(ap) {
		s.log.Debugf("Dropping %v, result is full", discovery.SSID)
	}
}
