package api

import (
	"net"
	"net/http"
	"time"

	"github.com/codeplox-dev/wifiscand/reporter"
	"github.com/codeplox-dev/wifiscand/scan"
	"github.com/codeplox-dev/wifiscand/taillog"
	"github.com/go-errors/errors"
	"github.com/gorilla/mux"
)

// Requester runs one scan cycle into result, within timeout.
type Requester interface {
	Request(result *scan.Result, timeout time.Duration) error
}

type Config struct {
	Requester Requester
	Reporter  *reporter.Reporter
	Tail      *taillog.Log
	Timeout   time.Duration
	Version   string
	Log       Logger
}

// Api exposes the scanner over HTTP for debugging: the latest results,
// the retained log tail, an on-demand scan and a live event stream.
type Api struct {
	requester Requester
	reporter  *reporter.Reporter
	tail      *taillog.Log
	timeout   time.Duration
	version   string
	started   time.Time
	router    *mux.Router
	log       Logger
}

func New(config *Config) *Api {
	api := &Api{
		requester: config.Requester,
		reporter:  config.Reporter,
		tail:      config.Tail,
		timeout:   config.Timeout,
		version:   config.Version,
		started:   time.Now(),
		router:    mux.NewRouter(),
	}

	if api.timeout == 0 {
		api.timeout = reporter.DefaultTimeout
	}

	if config.Log != nil {
		api.log = config.Log
	} else {
		api.log = noopLogger{}
	}

	api.router.Handle("/api/v1/status", api.handleGetStatus()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/networks", api.handleGetNetworks()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/logs", api.handleGetLogs()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/scan", api.handlePostScan()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/scans/events", api.handleGetScanEvents()).Methods(http.MethodGet)

	return api
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *Api) Serve(l net.Listener) error {
	err := http.Serve(l, a)
	if err != nil {
		return errors.Errorf("unable to serve api: %v", err)
	}

	return nil
}
