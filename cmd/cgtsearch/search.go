package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/cgt/dyadic"
	"github.com/katalvlaran/cgt/enumerate"
)

func search(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	width := fs.Int("width", 4, "Board width")
	height := fs.Int("height", 4, "Board height")
	startID := fs.Uint64("start-id", 0, "First grid id to evaluate (inclusive)")
	lastID := fs.Uint64("last-id", 0, "Last grid id to evaluate (exclusive); 0 means 2^(width*height)")
	transpositionCapacity := fs.Int("transposition-capacity", 0, "Pre-sized shard capacity hint for the position cache")
	temperatureThreshold := fs.String("temperature-threshold", "0", "Only emit positions hotter than this (rational, p or p/q)")
	includeDecompositions := fs.Bool("include-decompositions", false, "Evaluate multi-component boards fully instead of skipping them")
	output := fs.String("output", "search_results.jsonl", "Output file for newline-delimited JSON records")
	progressInterval := fs.Duration("progress-interval", 5*time.Second, "How often to report progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cgtsearch search [options]

Sweep a Domineering board's id space, computing each position's
canonical form and temperature, and record the ones hotter than the
given threshold.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	threshold, err := dyadic.ParseRational(*temperatureThreshold)
	if err != nil {
		return fmt.Errorf("parse temperature-threshold: %w", err)
	}

	if *width <= 0 || *width > 255 || *height <= 0 || *height > 255 {
		return fmt.Errorf("width and height must be in 1..255")
	}

	cfg := enumerate.Config{
		Width:                 uint8(*width),
		Height:                uint8(*height),
		StartID:               *startID,
		LastID:                *lastID,
		TranspositionCapacity: *transpositionCapacity,
		TemperatureThreshold:  threshold,
		IncludeDecompositions: *includeDecompositions,
		OutputPath:            *output,
		ProgressInterval:      *progressInterval,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return enumerate.Run(ctx, cfg)
}
