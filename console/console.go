package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/codeplox-dev/wifiscand/scan"
)

// Renderer writes scan reports to a console sink in a fixed layout. Every
// scan cycle produces exactly one of a result table, a failure line or a
// timeout notice.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w: w,
	}
}

func (r *Renderer) Banner(version string) {
	fmt.Fprintf(r.w, "\n")
	fmt.Fprintf(r.w, "========================================\n")
	fmt.Fprintf(r.w, "  wifiscand WiFi Scanner\n")
	fmt.Fprintf(r.w, "  version %s\n", version)
	fmt.Fprintf(r.w, "========================================\n\n")
}

func (r *Renderer) Scanning(interval time.Duration) {
	fmt.Fprintf(r.w, "Scanning every %d seconds...\n", int(interval/time.Second))
}

func (r *Renderer) ScanStarting() {
	fmt.Fprintf(r.w, "--- Starting scan ---\n")
}

// Result renders a completed scan: a failure line when the scan could not
// be started, otherwise the network table.
func (r *Renderer) Result(result *scan.Result) {
	if !result.Success {
		fmt.Fprintf(r.w, "Scan failed (error: %d)\n\n", result.ErrorCode)
		return
	}

	fmt.Fprintf(r.w, "\n")
	fmt.Fprintf(r.w, "  %-32s  %-17s  %3s  %7s  %s\n", "SSID", "BSSID", "CH", "RSSI", "AUTH")
	fmt.Fprintf(r.w, "  %s\n", strings.Repeat("-", 80))

	for _, ap := range result.APs() {
		fmt.Fprintf(r.w, "  %-32s  %s  ch%2d  %4ddBm  %s\n", ap.SSID, ap.BSSID, ap.Channel, ap.RSSI, ap.Auth)
	}

	fmt.Fprintf(r.w, "\n  Found %d networks\n\n", result.Count())
}

// Timeout renders the notice for a scan nobody waited out. It is distinct
// from the failure line: the scan may still complete on its own.
func (r *Renderer) Timeout() {
	fmt.Fprintf(r.w, "Scan timeout!\n\n")
}
