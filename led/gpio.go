package led

import (
	"github.com/go-errors/errors"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// check GPIOPin compliance to its interface during compile time
var _ Pin = (*GPIOPin)(nil)

// GPIOPin drives the indicator through a host GPIO pin, for example the
// onboard activity led on GPIO25.
type GPIOPin struct {
	pin gpio.PinIO
}

func NewGPIOPin(name string) (*GPIOPin, error) {
	_, err := host.Init()
	if err != nil {
		return nil, errors.Errorf("could not initialize host drivers: %v", err)
	}

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errors.Errorf("no pin named %v", name)
	}

	return &GPIOPin{
		pin: pin,
	}, nil
}

func (p *GPIOPin) Set(on bool) error {
	err := p.pin.Out(gpio.Level(on))
	if err != nil {
		return errors.Errorf("could not drive %v: %v", p.pin, err)
	}

	return nil
}
