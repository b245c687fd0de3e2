package led

import (
	"sync"
)

// check MockPin compliance to its interface during compile time
var _ Pin = (*MockPin)(nil)

// MockPin records every level written to it, for tests and for running
// without indicator hardware.
type MockPin struct {
	mtx    sync.Mutex
	levels []bool
}

func NewMockPin() *MockPin {
	return &MockPin{}
}

func (p *MockPin) Set(on bool) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.levels = append(p.levels, on)

	return nil
}

// Levels returns a copy of all levels written so far, oldest first.
func (p *MockPin) Levels() []bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	levels := make([]bool, len(p.levels))
	copy(levels, p.levels)

	return levels
}

// Level returns the most recently written level, or false if the pin was
// never written.
func (p *MockPin) Level() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if len(p.levels) == 0 {
		return false
	}

	return p.levels[len(p.levels)-1]
}
