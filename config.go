package main

import (
	"github.com/jessevdk/go-flags"
)

type profilingConfig struct {
	Listen string `long:"listen" description:"Add HTTP profiling over the given listen address"`
}

type config struct {
	ShowVersion  bool            `long:"version" description:"Display version information and exit"`
	Debug        bool            `long:"debug" description:"Start in debug mode"`
	Net          string          `long:"net" description:"The radio backend performing scans" choice:"wpa" choice:"mock" default:"wpa"`
	Interface    string          `long:"interface" description:"Wireless interface to scan on, auto-detected when empty"`
	Led          string          `long:"led" description:"The indicator led to drive" choice:"gpio" choice:"mock" default:"gpio"`
	LedPin       string          `long:"led-pin" description:"Name of the indicator led pin" default:"GPIO25"`
	ScanInterval uint            `long:"scan-interval" description:"Time in seconds between two scans" default:"20"`
	ScanTimeout  uint            `long:"scan-timeout" description:"Time in seconds to wait for a scan to complete" default:"30"`
	Listen       string          `long:"listen" description:"Listen address of the debug api, disabled when empty"`
	Profiling    profilingConfig `group:"profiling" namespace:"profiling"`
}

func loadConfig() (*config, error) {
	cfg := config{}

	parser := flags.NewParser(&cfg, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
