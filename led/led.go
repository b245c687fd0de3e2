package led

import (
	"sync"
	"time"

	"github.com/go-errors/errors"
)

// Pin is the single capability the controller needs from the underlying
// indicator hardware.
type Pin interface {
	Set(on bool) error
}

type Config struct {
	Pin    Pin
	Logger Logger
}

// Controller drives the indicator through its two states: solid on while
// idle and blinking while a scan is in flight. At most one blink loop
// runs at a time; On, Off and StopBlink all cancel a running loop before
// touching the pin.
type Controller struct {
	pin  Pin
	log  Logger
	mtx  sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewController(config *Config) *Controller {
	controller := &Controller{
		pin: config.Pin,
	}

	if config.Logger != nil {
		controller.log = config.Logger
	} else {
		controller.log = noopLogger{}
	}

	return controller
}

// On cancels any running blink and leaves the indicator lit.
func (c *Controller) On() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.cancelBlink()

	return c.pin.Set(true)
}

// Off cancels any running blink and leaves the indicator dark.
func (c *Controller) Off() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.cancelBlink()

	return c.pin.Set(false)
}

// StartBlink begins toggling the indicator every period, starting from on.
// A blink that is already running is replaced.
func (c *Controller) StartBlink(period time.Duration) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.cancelBlink()

	err := c.pin.Set(true)
	if err != nil {
		return errors.Errorf("could not drive pin: %v", err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	c.stop = stop
	c.done = done

	go c.blink(period, stop, done)

	return nil
}

// StopBlink ends the busy indication and always lands on solid on, the
// idle state.
func (c *Controller) StopBlink() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.cancelBlink()

	return c.pin.Set(true)
}

// Close cancels any running blink without changing the pin.
func (c *Controller) Close() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.cancelBlink()
}

func (c *Controller) blink(period time.Duration, stop chan struct{}, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	on := true

	for {
		select {
		case <-ticker.C:
			on = !on

			err := c.pin.Set(on)
			if err != nil {
				c.log.Errorf("Could not drive pin: %v", err)
			}
		case <-stop:
			return
		}
	}
}

// cancelBlink stops a running blink loop and waits for it to exit, so that
// the caller's subsequent pin write cannot interleave with the loop's.
// Callers must hold the mutex.
func (c *Controller) cancelBlink() {
	if c.stop == nil {
		return
	}

	close(c.stop)
	<-c.done

	c.stop = nil
	c.done = nil
}
