package scan

import "fmt"

const (
	// MaxSSIDLen is the longest network name carried in a result, per 802.11.
	MaxSSIDLen = 32

	// BSSIDLen is the length of an access point hardware address.
	BSSIDLen = 6
)

// AuthMode is the authentication classification of a discovered network.
type AuthMode uint8

const (
	AuthOpen AuthMode = iota
	AuthWEP
	AuthWPAPSK
	AuthWPA2PSK
	AuthWPAWPA2PSK
	AuthWPA3PSK
	AuthUnknown
)

func (a AuthMode) String() string {
	switch a {
	case AuthOpen:
		return "OPEN"
	case AuthWEP:
		return "WEP"
	case AuthWPAPSK:
		return "WPA"
	case AuthWPA2PSK:
		return "WPA2"
	case AuthWPAWPA2PSK:
		return "WPA/WPA2"
	case AuthWPA3PSK:
		return "WPA3"
	default:
		return "???"
	}
}

// AuthModeFromMask derives the classification from the auth bitmask a radio
// reports per discovery:
//
//	bit 0 (1): WEP
//	bit 1 (2): WPA
//	bit 2 (4): WPA2
//
// Reserved bit patterns map to AuthUnknown.
func AuthModeFromMask(mask uint8) AuthMode {
	if mask == 0 {
		return AuthOpen
	}
	if mask == 1 {
		return AuthWEP
	}
	if mask&4 != 0 && mask&2 != 0 {
		return AuthWPAWPA2PSK
	}
	if mask&4 != 0 {
		return AuthWPA2PSK
	}
	if mask&2 != 0 {
		return AuthWPAPSK
	}
	return AuthUnknown
}

// BSSID is the hardware address of an access point.
type BSSID [BSSIDLen]byte

func (b BSSID) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

// AP is a single discovered network.
type AP struct {
	SSID    string
	BSSID   BSSID
	RSSI    int16 // dBm
	Channel uint8
	Auth    AuthMode
}
