package radio

import (
	"sync"
)

// check Mock compliance to its interface during compile time
var _ Radio = (*Mock)(nil)

// Mock replays scripted discoveries without any wireless hardware. Queued
// discoveries model the airspace and are reported on every scan until
// cleared. A scan normally completes within StartScan; Hold keeps it
// active until Release, for exercising timeouts.
type Mock struct {
	mtx         sync.Mutex
	discoveries []Discovery
	startErr    *StartError
	handler     Handler
	active      bool
	held        bool
	scans       int
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Start() error {
	return nil
}

func (m *Mock) Stop() error {
	return nil
}

func (m *Mock) StartScan(handler Handler) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.startErr != nil {
		err := m.startErr
		m.startErr = nil
		return err
	}

	m.active = true

	if m.held {
		m.handler = handler
		return nil
	}

	m.deliver(handler)

	return nil
}

func (m *Mock) Active() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.active
}

// Queue adds discoveries to report on every following scan.
func (m *Mock) Queue(discoveries ...Discovery) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.discoveries = append(m.discoveries, discoveries...)
}

// Clear removes all queued discoveries.
func (m *Mock) Clear() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.discoveries = nil
}

// FailStart makes the next StartScan fail with the given code.
func (m *Mock) FailStart(code int32) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.startErr = &StartError{Code: code}
}

// Hold keeps following scans active until Release.
func (m *Mock) Hold() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.held = true
}

// Release completes a held scan, delivering its discoveries.
func (m *Mock) Release() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.held = false

	if m.active && m.handler != nil {
		handler := m.handler
		m.handler = nil
		m.deliver(handler)
	}
}

// Scans returns how many scans have completed.
func (m *Mock) Scans() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.scans
}

// deliver reports all queued discoveries and ends the scan. Callers must
// hold the mutex, so deliveries always happen before Active goes false.
func (m *Mock) deliver(handler Handler) {
	for _, discovery := range m.discoveries {
		handler(discovery)
	}

	m.active = false
	m.scans++
}
