package wpa

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

// Wpa talks to the wpa_supplicant daemon through its D-Bus interface at
// fi.w1.wpa_supplicant1.
type Wpa struct {
	conn *dbus.Conn
}

func New() *Wpa {
	return &Wpa{}
}

func (w *Wpa) Start() error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return errors.Errorf("could not connect to system bus: %v", err)
	}

	w.conn = conn

	return nil
}

func (w *Wpa) Stop() error {
	if w.conn == nil {
		return nil
	}

	err := w.conn.Close()
	if err != nil {
		return errors.Errorf("could not close system bus connection: %v", err)
	}

	w.conn = nil

	return nil
}

func (w *Wpa) GetInterface(name string) (*Interface, error) {
	obj := w.conn.Object("fi.w1.wpa_supplicant1", "/fi/w1/wpa_supplicant1")

	call := obj.Call("fi.w1.wpa_supplicant1.GetInterface", 0, name)
	if call.Err != nil {
		return nil, errors.Errorf("could not get interface %v: %v", name, call.Err)
	}

	var objPath dbus.ObjectPath
	err := call.Store(&objPath)
	if err != nil {
		return nil, errors.Errorf("could not store value: %v", err)
	}

	return &Interface{
		wpa: w,
		obj: w.conn.Object("fi.w1.wpa_supplicant1", objPath),
	}, nil
}
