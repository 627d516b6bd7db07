// Command otpnet-server runs the demo HTTP API around one protocol
// instance.
//
// The protocol parameters (pad count, pad width, max gap) come from flags
// or a YAML config file; flags win when both are given. The pad sequence
// is generated once at startup and lives only in memory.
//
// # Configuration File
//
// Create a YAML file with service settings:
//
//	protocol:
//	  pad_count: 1000
//	  pad_bits: 4028
//	  max_gap: 40
//	http_addr: ":8080"
//	metrics_addr: ":9090"
//	enable_pprof: false
//	enable_cors: true
//	pad_seed: ""   # deterministic pads when set; for demos only
//
// # Usage
//
//	go run ./cmd/otpnet-server --config=service.yaml
//	go run ./cmd/otpnet-server --pads=1000 --pad-bits=4028 --max-gap=40
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/otpnet/otpnet/api/httpserver"
	"github.com/otpnet/otpnet/cmd/common"
	"github.com/otpnet/otpnet/services"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config file")
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		metricsAddr = flag.String("metrics-addr", "", "Metrics listen address (disabled if empty)")
		padCount    = flag.Int("pads", 0, "Total number of pads")
		padBits     = flag.Int("pad-bits", 0, "Pad width in bits")
		maxGap      = flag.Int("max-gap", -1, "Maximum allowed pad index gap between parties")
		padSeed     = flag.String("pad-seed", "", "Deterministic pad seed (demos only)")
		enablePprof = flag.Bool("pprof", false, "Enable pprof debug API")
		enableCORS  = flag.Bool("cors", false, "Allow cross-origin requests")
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	log, err := common.SetupLogger(*logLevel)
	if err != nil {
		fmt.Printf("Logger error: %v\n", err)
		os.Exit(1)
	}

	cfg := &services.ServiceConfig{}
	if *configPath != "" {
		cfg, err = common.LoadServiceConfig(*configPath)
		if err != nil {
			log.Error("Failed to load config", "err", err)
			os.Exit(1)
		}
	}

	if *padCount > 0 {
		cfg.Protocol.PadCount = *padCount
	}
	if *padBits > 0 {
		cfg.Protocol.PadBits = *padBits
	}
	if *maxGap >= 0 {
		cfg.Protocol.MaxGap = *maxGap
	}
	if *padSeed != "" {
		cfg.PadSeed = *padSeed
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = *addr
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = *metricsAddr
	}
	cfg.EnablePprof = cfg.EnablePprof || *enablePprof
	cfg.EnableCORS = cfg.EnableCORS || *enableCORS

	proto, err := common.NewProtocol(cfg, log)
	if err != nil {
		log.Error("Failed to construct protocol", "err", err)
		os.Exit(1)
	}

	log.Info("Protocol initialized",
		"padCount", cfg.Protocol.PadCount,
		"padBits", cfg.Protocol.PadBits,
		"maxGap", cfg.Protocol.MaxGap,
		"deterministic", cfg.PadSeed != "")

	handler := services.NewProtocolHandler(proto, log)
	srv, err := httpserver.New(&httpserver.HTTPServerConfig{
		ListenAddr:               cfg.HTTPAddr,
		MetricsAddr:              cfg.MetricsAddr,
		EnablePprof:              cfg.EnablePprof,
		EnableCORS:               cfg.EnableCORS,
		Log:                      log,
		DrainDuration:            5 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             10 * time.Second,
	}, handler)
	if err != nil {
		log.Error("Failed to create server", "err", err)
		os.Exit(1)
	}

	srv.RunInBackground()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down")
	srv.Shutdown()
}
