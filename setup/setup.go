// Package setup runs the startup sequence that prepares the search client:
// read the candidate URLs, resolve them, log the redacted result, publish the
// final URL, and report which optional integrations are available.
//
// It is the explicit replacement for a framework initializer. Run is called
// once per process start; it keeps no state between calls.
package setup

import (
	"fmt"

	"github.com/jongio/bonsai-core/clusterurl"
	"github.com/jongio/bonsai-core/config"
	"github.com/jongio/bonsai-core/env"
	"github.com/jongio/bonsai-core/logutil"
	"github.com/jongio/bonsai-core/transport"
)

// ClientDefaultURL is what the search client connects to when no URL is published.
const ClientDefaultURL = "http://localhost:9200"

// Options configures Run. Every field is optional.
type Options struct {
	// Config defaults to config.Default().
	Config *config.Config
	// Env is where candidate URLs are read from. Defaults to the process environment.
	Env env.Lookup
	// Publish receives the final URL. Nil means nothing is written.
	Publish env.Setter
	// Logger defaults to logutil.NewLogger("bonsai").
	Logger *logutil.ComponentLogger
	// Metrics records resolution outcomes when set.
	Metrics *Metrics
}

// Result is everything the caller needs to build the search client.
type Result struct {
	Resolution      clusterurl.Resolution `json:"resolution"`
	TargetVar       string                `json:"targetVar"`
	Published       bool                  `json:"published"`
	Transport       transport.Options     `json:"-"`
	BulkConcurrency int                   `json:"bulkConcurrency"`
	Capabilities    []Capability          `json:"capabilities"`
}

// Run performs the startup sequence. The only error it returns is a failure
// to publish the final URL; bad input is logged and passed through.
func Run(opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	src := opts.Env
	if src == nil {
		src = env.OS()
	}
	log := opts.Logger
	if log == nil {
		log = logutil.NewLogger("bonsai")
	}

	primary := env.Get(src, cfg.PrimaryVar)
	fallback := env.Get(src, cfg.FallbackVar)
	res := clusterurl.ResolveWith(primary, fallback, clusterurl.Options{Placeholder: cfg.RedactPlaceholder})
	logResolution(log, cfg, res, primary)
	opts.Metrics.observe(res)

	result := &Result{
		Resolution: res,
		TargetVar:  cfg.TargetVar,
		Transport:  cfg.TransportOptions(),
	}

	if res.Source != clusterurl.SourceNone && opts.Publish != nil {
		if err := opts.Publish.Set(cfg.TargetVar, res.URL); err != nil {
			return nil, fmt.Errorf("failed to publish cluster url: %w", err)
		}
		result.Published = true
	}

	log.Debug("applying client transport overrides",
		"userAgent", result.Transport.UserAgent,
		"keepAlive", result.Transport.KeepAlive,
		"acceptEncoding", result.Transport.AcceptEncoding)

	concurrency, err := BulkConcurrency(src, cfg.BulkConcurrency)
	if err != nil {
		log.Warn("ignoring invalid bulk concurrency", "variable", env.BulkConcurrency, "error", err, "default", concurrency)
	}
	result.BulkConcurrency = concurrency
	result.Capabilities = DetectCapabilities(src, concurrency)
	for _, c := range result.Capabilities {
		if c.Present {
			log.Info("optional integration available", "capability", c.Name, "detail", c.Detail)
		} else {
			log.Debug("optional integration unavailable", "capability", c.Name, "reason", c.Detail)
		}
	}

	return result, nil
}

func logResolution(log *logutil.ComponentLogger, cfg *config.Config, res clusterurl.Resolution, primary string) {
	switch res.Source {
	case clusterurl.SourcePrimary:
		switch res.PortAction {
		case clusterurl.PortAppended:
			log.Info("appending standard port to the cluster url", "port", res.CanonicalPort)
		case clusterurl.PortOverridden:
			log.Info("overriding the requested port with the standard port", "requested", res.RequestedPort, "port", res.CanonicalPort)
		case clusterurl.PortPassthrough:
			log.Warn("cluster url port is ambiguous, leaving it for the client", "port", res.RequestedPort)
		}
		log.Info("initializing default search client", "url", res.Redacted)
	case clusterurl.SourceFallback:
		if primary != "" {
			log.Warn("ignoring invalid cluster url", "variable", cfg.PrimaryVar)
		}
		log.Info("using cluster url as given", "variable", cfg.FallbackVar)
	default:
		if primary != "" {
			log.Warn("ignoring invalid cluster url", "variable", cfg.PrimaryVar)
		}
		log.Info("no cluster url set, proceeding with client default",
			"primary", cfg.PrimaryVar, "fallback", cfg.FallbackVar, "default", ClientDefaultURL)
	}
}
