package reporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/codeplox-dev/wifiscand/console"
	"github.com/codeplox-dev/wifiscand/scan"
	"github.com/codeplox-dev/wifiscand/scanner"
)

// stubRequester plays one scripted outcome per cycle and ends the run
// with ErrStopped once the script is exhausted.
type stubRequester struct {
	script []func(result *scan.Result) error
	calls  int
}

func (s *stubRequester) Request(result *scan.Result, timeout time.Duration) error {
	if s.calls >= len(s.script) {
		return scanner.ErrStopped
	}

	step := s.script[s.calls]
	s.calls++

	return step(result)
}

func succeedWith(aps ...scan.AP) func(result *scan.Result) error {
	return func(result *scan.Result) error {
		result.Reset()
		for _, ap := range aps {
			result.Add(ap)
		}
		result.Success = true
		return nil
	}
}

func failWith(code int32) func(result *scan.Result) error {
	return func(result *scan.Result) error {
		result.Reset()
		result.ErrorCode = code
		return nil
	}
}

func timeOut() func(result *scan.Result) error {
	return func(result *scan.Result) error {
		return scanner.ErrTimeout
	}
}

func runReporter(t *testing.T, reporter *Reporter) {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- reporter.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
	}
}

func TestReporterRendersCycles(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{script: []func(result *scan.Result) error{
			succeedWith(scan.AP{SSID: "net-a", Auth: scan.AuthWPA2PSK}),
			timeOut(),
			failWith(-3),
		}},
		Console:  console.NewRenderer(&buf),
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	runReporter(t, reporter)

	got := buf.String()

	for _, want := range []string{
		"Scanning every 0 seconds...",
		"--- Starting scan ---",
		"net-a",
		"Found 1 networks",
		"Scan timeout!",
		"Scan failed (error: -3)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}

	if starts := strings.Count(got, "--- Starting scan ---"); starts != 4 {
		t.Errorf("rendered %d scan starts, want 4", starts)
	}
}

// The first scan fires immediately, not one interval after start.
func TestReporterScansImmediately(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{},
		Console:   console.NewRenderer(&buf),
		Interval:  time.Hour,
		Timeout:   time.Second,
	})

	runReporter(t, reporter)

	if !strings.Contains(buf.String(), "--- Starting scan ---") {
		t.Error("no scan attempted before the first interval")
	}
}

func TestReporterLastScan(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{script: []func(result *scan.Result) error{
			succeedWith(scan.AP{SSID: "keep-me", RSSI: -52, Channel: 1, Auth: scan.AuthWPAPSK}),
			timeOut(),
		}},
		Console:  console.NewRenderer(&buf),
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	if reporter.LastScan() != nil {
		t.Error("LastScan() != nil before any scan")
	}

	runReporter(t, reporter)

	snapshot := reporter.LastScan()
	if snapshot == nil {
		t.Fatal("LastScan() = nil after a completed scan")
	}
	if !snapshot.Success {
		t.Error("Success = false, want true")
	}
	if len(snapshot.Networks) != 1 {
		t.Fatalf("len(Networks) = %d, want 1", len(snapshot.Networks))
	}
	if snapshot.Networks[0].SSID != "keep-me" {
		t.Errorf("Networks[0].SSID = %q, want %q", snapshot.Networks[0].SSID, "keep-me")
	}
	if snapshot.Taken.IsZero() {
		t.Error("Taken is zero")
	}
}

func TestReporterStoresFailedScans(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{script: []func(result *scan.Result) error{
			failWith(-5),
		}},
		Console:  console.NewRenderer(&buf),
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	runReporter(t, reporter)

	snapshot := reporter.LastScan()
	if snapshot == nil {
		t.Fatal("LastScan() = nil after a completed scan")
	}
	if snapshot.Success {
		t.Error("Success = true, want false")
	}
	if snapshot.ErrorCode != -5 {
		t.Errorf("ErrorCode = %d, want -5", snapshot.ErrorCode)
	}
}

func TestReporterSubscribeScans(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{script: []func(result *scan.Result) error{
			succeedWith(scan.AP{SSID: "first"}),
			succeedWith(scan.AP{SSID: "second"}),
		}},
		Console:  console.NewRenderer(&buf),
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	client := reporter.SubscribeScans()
	defer client.Cancel()

	runReporter(t, reporter)

	for _, want := range []string{"first", "second"} {
		select {
		case snapshot := <-client.Scans:
			if len(snapshot.Networks) != 1 || snapshot.Networks[0].SSID != want {
				t.Errorf("snapshot networks = %v, want one network %q", snapshot.Networks, want)
			}
		default:
			t.Fatalf("no snapshot for scan %q", want)
		}
	}
}

func TestReporterCancelledClientMissesScans(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{script: []func(result *scan.Result) error{
			succeedWith(scan.AP{SSID: "unseen"}),
		}},
		Console:  console.NewRenderer(&buf),
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	client := reporter.SubscribeScans()
	client.Cancel()

	runReporter(t, reporter)

	select {
	case snapshot := <-client.Scans:
		t.Errorf("received snapshot %v after Cancel()", snapshot)
	default:
	}
}

func TestReporterShutdown(t *testing.T) {
	var buf bytes.Buffer

	reporter := New(&Config{
		Requester: &stubRequester{script: []func(result *scan.Result) error{
			succeedWith(),
		}},
		Console:  console.NewRenderer(&buf),
		Interval: time.Hour,
		Timeout:  time.Second,
	})

	done := make(chan error, 1)
	go func() {
		done <- reporter.Run()
	}()

	// let the first cycle complete, then interrupt the hour-long sleep
	time.Sleep(50 * time.Millisecond)
	reporter.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after Shutdown()")
	}
}
