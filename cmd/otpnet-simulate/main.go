// Command otpnet-simulate runs the wasted-pad scenario harness against a
// freshly constructed protocol instance and logs the rounded averages.
//
// # Usage
//
//	go run ./cmd/otpnet-simulate --pads=1000 --pad-bits=4028 --max-gap=40 --iterations=6000
//	go run ./cmd/otpnet-simulate --seed=7   # reproducible run
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/otpnet/otpnet/cmd/common"
	"github.com/otpnet/otpnet/services"
	"github.com/otpnet/otpnet/simulation"
)

func main() {
	var (
		padCount   = flag.Int("pads", 1000, "Total number of pads")
		padBits    = flag.Int("pad-bits", 4028, "Pad width in bits")
		maxGap     = flag.Int("max-gap", 40, "Maximum allowed pad index gap between parties")
		iterations = flag.Int("iterations", 6000, "Scenario iterations")
		seed       = flag.Int64("seed", 0, "Sampling seed (time-based if 0)")
		padSeed    = flag.String("pad-seed", "simulation", "Deterministic pad seed")
		logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	log, err := common.SetupLogger(*logLevel)
	if err != nil {
		fmt.Printf("Logger error: %v\n", err)
		os.Exit(1)
	}

	cfg := &services.ServiceConfig{PadSeed: *padSeed}
	cfg.Protocol.PadCount = *padCount
	cfg.Protocol.PadBits = *padBits
	cfg.Protocol.MaxGap = *maxGap

	proto, err := common.NewProtocol(cfg, log)
	if err != nil {
		log.Error("Failed to construct protocol", "err", err)
		os.Exit(1)
	}

	samplingSeed := *seed
	if samplingSeed == 0 {
		samplingSeed = time.Now().UnixNano()
	}

	start := time.Now()
	results, err := simulation.Run(proto, *iterations, rand.New(rand.NewSource(samplingSeed)))
	if err != nil {
		log.Error("Simulation failed", "err", err)
		os.Exit(1)
	}

	log.Info("Average wasted pads",
		"loneSender", results.LoneSender,
		"twoSenders", results.TwoSenders,
		"weightedAll", results.WeightedAll,
		"iterations", *iterations,
		"seed", samplingSeed,
		"elapsed", time.Since(start).String())
}
