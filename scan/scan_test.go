package scan

import "testing"

func TestAuthModeFromMask(t *testing.T) {
	tests := []struct {
		name string
		mask uint8
		want AuthMode
	}{
		{"open", 0, AuthOpen},
		{"wep", 1, AuthWEP},
		{"wpa", 2, AuthWPAPSK},
		{"wpa with wep bit", 3, AuthWPAPSK},
		{"wpa2", 4, AuthWPA2PSK},
		{"wpa2 with wep bit", 5, AuthWPA2PSK},
		{"wpa and wpa2", 6, AuthWPAWPA2PSK},
		{"all low bits", 7, AuthWPAWPA2PSK},
		{"reserved bit 3", 8, AuthUnknown},
		{"reserved bit 3 with wep bit", 9, AuthUnknown},
		{"reserved high bit", 0x80, AuthUnknown},
		{"high bits with wpa2", 0xF4, AuthWPA2PSK},
		{"all bits", 0xFF, AuthWPAWPA2PSK},
	}

	for _, tt := range tests {
		if got := AuthModeFromMask(tt.mask); got != tt.want {
			t.Errorf("%s: AuthModeFromMask(%#x) = %v, want %v", tt.name, tt.mask, got, tt.want)
		}
	}
}

// The classification must be total and deterministic over the whole mask
// domain: every input yields exactly one of the seven modes, and the same
// one on every call.
func TestAuthModeFromMaskTotal(t *testing.T) {
	for mask := 0; mask <= 0xFF; mask++ {
		got := AuthModeFromMask(uint8(mask))
		if got > AuthUnknown {
			t.Fatalf("AuthModeFromMask(%#x) = %d, not a valid AuthMode", mask, got)
		}
		if again := AuthModeFromMask(uint8(mask)); again != got {
			t.Fatalf("AuthModeFromMask(%#x) not deterministic: %v then %v", mask, got, again)
		}
	}
}

func TestAuthModeString(t *testing.T) {
	tests := []struct {
		mode AuthMode
		want string
	}{
		{AuthOpen, "OPEN"},
		{AuthWEP, "WEP"},
		{AuthWPAPSK, "WPA"},
		{AuthWPA2PSK, "WPA2"},
		{AuthWPAWPA2PSK, "WPA/WPA2"},
		{AuthWPA3PSK, "WPA3"},
		{AuthUnknown, "???"},
		{AuthMode(42), "???"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("AuthMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestBSSIDString(t *testing.T) {
	b := BSSID{0xAA, 0xBB, 0xCC, 0x11, 0x22, 0x33}
	if got, want := b.String(), "AA:BB:CC:11:22:33"; got != want {
		t.Errorf("BSSID.String() = %q, want %q", got, want)
	}

	zero := BSSID{}
	if got, want := zero.String(), "00:00:00:00:00:00"; got != want {
		t.Errorf("zero BSSID.String() = %q, want %q", got, want)
	}

	if got := len(b.String()); got != 17 {
		t.Errorf("BSSID.String() length = %d, want 17", got)
	}
}
