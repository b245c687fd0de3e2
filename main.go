package main

import (
	"github.com/codeplox-dev/wifiscand/api"
	"github.com/codeplox-dev/wifiscand/console"
	"github.com/codeplox-dev/wifiscand/led"
	"github.com/codeplox-dev/wifiscand/radio"
	"github.com/codeplox-dev/wifiscand/reporter"
	"github.com/codeplox-dev/wifiscand/scanner"
	"github.com/codeplox-dev/wifiscand/taillog"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"
	// Blank import to set up profiling HTTP handlers.
	_ "net/http/pprof"
)

var (
	// commit stores the current commit hash of this build. This should be set using -ldflags during compilation.
	Commit string
	// version stores the version string of this build. This should be set using -ldflags during compilation.
	Version string
	// date stores the date of this build. This should be set using -ldflags during compilation.
	Date string
)

// wifiscandMain is the true entry point for wifiscand. This is required since defers
// created in the top-level scope of a main method aren't executed if os.Exit() is called.
func wifiscandMain() error {
	tailLog := taillog.New()

	// Reports go to stdout through the console renderer, logs stay on stderr
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	log.AddHook(tailLog)

	// Load CLI configuration and defaults
	cfg, err := loadConfig()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		return nil
	} else if err != nil {
		return errors.Errorf("Failed parsing arguments: %v", err)
	}

	// Set logger into debug mode if called with --debug
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Info("Setting debug mode.")
	}

	log.Debug("Loaded config.")

	// Print version of the daemon
	log.Infof("Version %s (commit %s)", Version, Commit)
	log.Infof("Built on %s", Date)

	// Stop here if only version was requested
	if cfg.ShowVersion {
		return nil
	}

	if cfg.Profiling.Listen != "" {
		go func() {
			log.Infof("Starting profiling server on %v", cfg.Profiling.Listen)
			// Redirect the root path
			http.Handle("/", http.RedirectHandler("/debug/pprof", http.StatusSeeOther))
			// All other handlers are registered on DefaultServeMux through the import of pprof
			err := http.ListenAndServe(cfg.Profiling.Listen, nil)
			if err != nil {
				log.Errorf("Could not run profiler: %v", err)
			}
		}()
	}

	// The pin behind the indicator led
	var pin led.Pin

	switch cfg.Led {
	case "gpio":
		pin, err = led.NewGPIOPin(cfg.LedPin)
		if err != nil {
			return errors.Errorf("Could not open led pin: %v", err)
		}

		log.Infof("Created led on pin %v.", cfg.LedPin)
	case "mock":
		pin = led.NewMockPin()

		log.Info("Created a mock led.")
	default:
		return errors.Errorf("Unknown led type %v", cfg.Led)
	}

	indicator := led.NewController(&led.Config{
		Pin:    pin,
		Logger: log.New().WithField("system", "led"),
	})

	defer indicator.Close()

	// Solid on signals readiness until the first scan starts
	if err := indicator.On(); err != nil {
		log.Warnf("Could not turn on led: %v", err)
	}

	// The radio backend performing the actual scans
	var r radio.Radio

	switch cfg.Net {
	case "wpa":
		ifname := cfg.Interface
		if ifname == "" {
			ifname, err = radio.DetectInterface()
			if err != nil {
				return errors.Errorf("Could not detect wireless interface: %v", err)
			}

			log.Infof("Detected wireless interface %v.", ifname)
		}

		r = radio.NewWpaRadio(&radio.WpaConfig{
			Interface: ifname,
			Logger:    log.New().WithField("system", "radio"),
		})

		log.Infof("Created wpa radio on %v.", ifname)
	case "mock":
		r = radio.NewMock()

		log.Info("Created a mock radio.")
	default:
		return errors.Errorf("Unknown networking type %v", cfg.Net)
	}

	err = r.Start()
	if err != nil {
		return errors.Errorf("Could not start radio: %v", err)
	}

	defer func() {
		err := r.Stop()
		if err != nil {
			log.Errorf("Could not properly stop radio: %v", err)
		} else {
			log.Info("Stopped radio.")
		}
	}()

	// The worker serializing all scan requests onto the radio
	scanWorker := scanner.New(&scanner.Config{
		Radio:  r,
		Led:    indicator,
		Logger: log.New().WithField("system", "scanner"),
	})

	if err := scanWorker.Start(); err != nil {
		return errors.Errorf("Could not start scanner: %v", err)
	}

	log.Info("Started scanner.")

	defer func() {
		err := scanWorker.Stop()
		if err != nil {
			log.Errorf("Could not properly stop scanner: %v", err)
		} else {
			log.Info("Stopped scanner.")
		}
	}()

	renderer := console.NewRenderer(os.Stdout)
	renderer.Banner(Version)

	// The reporter running the periodic scan cycles
	rep := reporter.New(&reporter.Config{
		Requester: scanWorker,
		Console:   renderer,
		Interval:  time.Duration(cfg.ScanInterval) * time.Second,
		Timeout:   time.Duration(cfg.ScanTimeout) * time.Second,
		Logger:    log.New().WithField("system", "reporter"),
	})

	log.Info("Created reporter.")

	// The debug api exposing results, logs and on-demand scans
	if cfg.Listen != "" {
		a := api.New(&api.Config{
			Requester: scanWorker,
			Reporter:  rep,
			Tail:      tailLog,
			Timeout:   time.Duration(cfg.ScanTimeout) * time.Second,
			Version:   Version,
			Log:       log.New().WithField("system", "api"),
		})

		lis, err := net.Listen("tcp", cfg.Listen)
		if err != nil {
			return errors.Errorf("Could not listen on %v: %v", cfg.Listen, err)
		}

		defer func() {
			err := lis.Close()
			if err != nil {
				log.Errorf("Could not close listener: %v", err)
			}
		}()

		go func() {
			log.Infof("Serving api on %v.", cfg.Listen)

			err := a.Serve(lis)
			if err != nil {
				log.Errorf("Could not serve api: %v", err)
			}
		}()
	}

	// Handle interrupt signals correctly
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		sig := <-signals
		log.Info(sig)
		log.Info("Received an interrupt, stopping scans...")
		rep.Shutdown()
	}()

	// blocks until the reporter is shut down
	err = rep.Run()
	if err != nil {
		return errors.Errorf("Failed running reporter: %v", err)
	}

	// finish with no error
	return nil
}

func main() {
	// Call the "real" main in a nested manner so the defers will properly
	// be executed in the case of a graceful shutdown.
	if err := wifiscandMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		} else {
			log.WithError(err).Println("Failed running wifiscand.")
		}
		os.Exit(1)
	}
}
