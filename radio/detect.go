package radio

import (
	"github.com/go-errors/errors"
	"github.com/mdlayher/wifi"
)

// DetectInterface returns the name of the first wireless interface on the
// system, for when none was configured explicitly.
func DetectInterface() (string, error) {
	client, err := wifi.New()
	if err != nil {
		return "", errors.Errorf("could not open wifi client: %v", err)
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return "", errors.Errorf("could not list wifi interfaces: %v", err)
	}

	for _, iface := range ifaces {
		if iface.Name != "" {
			return iface.Name, nil
		}
	}

	return "", errors.New("no wireless interface found")
}
