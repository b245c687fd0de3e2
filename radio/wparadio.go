package radio

import (
	"sync"

	"github.com/codeplox-dev/wifiscand/radio/wpa"
	"github.com/go-errors/errors"
)

// check WpaRadio compliance to its interface during compile time
var _ Radio = (*WpaRadio)(nil)

type WpaConfig struct {
	Interface string
	Logger    Logger
}

// WpaRadio scans through the wpa_supplicant daemon. A scan is triggered
// on the interface and runs inside the daemon; Active polls the daemon's
// scanning state and, once it goes idle, reports the daemon's network
// cache through the handler before going idle itself.
type WpaRadio struct {
	log     Logger
	ifname  string
	wpa     *wpa.Wpa
	iface   *wpa.Interface
	mtx     sync.Mutex
	handler Handler
	active  bool
}

func NewWpaRadio(config *WpaConfig) *WpaRadio {
	radio := &WpaRadio{
		ifname: config.Interface,
		wpa:    wpa.New(),
	}

	if config.Logger != nil {
		radio.log = config.Logger
	} else {
		radio.log = noopLogger{}
	}

	return radio
}

func (r *WpaRadio) Start() error {
	err := r.wpa.Start()
	if err != nil {
		return errors.Errorf("could not start wpa: %v", err)
	}

	iface, err := r.wpa.GetInterface(r.ifname)
	if err != nil {
		_ = r.Stop()
		return errors.Errorf("could not find interface %v: %v", r.ifname, err)
	}

	r.iface = iface

	return nil
}

func (r *WpaRadio) Stop() error {
	err := r.wpa.Stop()
	if err != nil {
		return errors.Errorf("could not stop wpa: %v", err)
	}

	return nil
}

func (r *WpaRadio) StartScan(handler Handler) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	err := r.iface.Scan()
	if err != nil {
		return &StartError{Code: CodeUnknown, Cause: err}
	}

	r.handler = handler
	r.active = true

	return nil
}

func (r *WpaRadio) Active() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !r.active {
		return false
	}

	scanning, err := r.iface.Scanning()
	if err != nil {
		r.log.Errorf("Could not read scanning state: %v", err)
		scanning = false
	}

	if scanning {
		return true
	}

	r.deliver()

	r.handler = nil
	r.active = false

	return false
}

// deliver reports the daemon's network cache through the current handler.
// Callers must hold the mutex.
func (r *WpaRadio) deliver() {
	bsss, err := r.iface.BSSs()
	if err != nil {
		r.log.Errorf("Could not list networks: %v", err)
		return
	}

	for _, bss := range bsss {
		b, err := bss.GetAll()
		if err != nil {
			r.log.Debugf("Skipping network: %v", err)
			continue
		}

		r.handler(discoveryFromBss(b))
	}
}

func discoveryFromBss(b *wpa.Bss) Discovery {
	discovery := Discovery{
		SSID:     b.Ssid,
		RSSI:     b.Signal,
		Channel:  channelFromFrequency(b.Frequency),
		AuthMask: authMask(b),
	}

	copy(discovery.BSSID[:], b.Bssid)

	return discovery
}

// authMask folds the supplicant's security properties into the auth
// bitmask the scan layer decodes: bit 0 for plain privacy (WEP), bit 1
// for WPA, bit 2 for WPA2.
func authMask(b *wpa.Bss) uint8 {
	var mask uint8

	if len(b.WpaKeyMgmt) > 0 {
		mask |= 0x2
	}

	if len(b.RsnKeyMgmt) > 0 {
		mask |= 0x4
	}

	if mask == 0 && b.Privacy {
		mask |= 0x1
	}

	return mask
}

// channelFromFrequency maps a center frequency in MHz to its channel
// number, or 0 for frequencies outside the known bands.
func channelFromFrequency(frequency uint16) uint8 {
	switch {
	case frequency == 2484:
		return 14
	case frequency >= 2412 && frequency <= 2472:
		return uint8((frequency - 2407) / 5)
	case frequency >= 5035 && frequency <= 5885:
		return uint8((frequency - 5000) / 5)
	case frequency >= 5955 && frequency <= 7115:
		return uint8((frequency - 5950) / 5)
	default:
		return 0
	}
}
