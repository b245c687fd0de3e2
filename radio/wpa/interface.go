package wpa

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
)

type Interface struct {
	wpa *Wpa
	obj dbus.BusObject
}

func (i *Interface) String() string {
	return string(i.obj.Path())
}

// Scan triggers an active scan on the interface. The scan runs in the
// daemon; watch Scanning to learn when it finished.
func (i *Interface) Scan() error {
	call := i.obj.Call("fi.w1.wpa_supplicant1.Interface.Scan", 0, map[string]interface{}{
		"Type": "active",
	})
	if call.Err != nil {
		return errors.Errorf("could not scan: %v", call.Err)
	}

	return nil
}

// Scanning reports whether the interface is currently scanning.
func (i *Interface) Scanning() (bool, error) {
	v, err := i.obj.GetProperty("fi.w1.wpa_supplicant1.Interface.Scanning")
	if err != nil {
		return false, errors.Errorf("could not get scanning state: %v", err)
	}

	scanning, ok := v.Value().(bool)
	if !ok {
		return false, errors.Errorf("could not convert result: %v", v)
	}

	return scanning, nil
}

// BSSs lists the networks the daemon currently knows about.
func (i *Interface) BSSs() ([]*BSS, error) {
	v, err := i.obj.GetProperty("fi.w1.wpa_supplicant1.Interface.BSSs")
	if err != nil {
		return nil, errors.Errorf("could not get bsss: %v", err)
	}

	objectPaths, ok := v.Value().([]dbus.ObjectPath)
	if !ok {
		return nil, errors.Errorf("could not convert result: %v", v)
	}

	var bsss []*BSS

	for _, objectPath := range objectPaths {
		bsss = append(bsss, &BSS{
			obj: i.wpa.conn.Object("fi.w1.wpa_supplicant1", objectPath),
		})
	}

	return bsss, nil
}
