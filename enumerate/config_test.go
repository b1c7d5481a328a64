package enumerate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/cgt/enumerate"
)

func TestValidateFillsDefaultLastID(t *testing.T) {
	cfg := enumerate.Config{Width: 2, Height: 2, OutputPath: "out.jsonl"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.LastID != 16 {
		t.Errorf("LastID = %d, want 16", cfg.LastID)
	}
}

func TestValidateFillsDefaultProgressInterval(t *testing.T) {
	cfg := enumerate.Config{Width: 2, Height: 2, OutputPath: "out.jsonl"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.ProgressInterval != 5*time.Second {
		t.Errorf("ProgressInterval = %v, want 5s", cfg.ProgressInterval)
	}
}

func TestValidateRejectsZeroDimensions(t *testing.T) {
	cfg := enumerate.Config{Width: 0, Height: 2, OutputPath: "out.jsonl"}
	err := cfg.Validate()
	var cerr *enumerate.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("Validate err = %v, want *ConfigError", err)
	}
	if !errors.Is(cerr, enumerate.ErrInvalidDimensions) {
		t.Errorf("Validate err = %v, want wrapping ErrInvalidDimensions", cerr)
	}
}

func TestValidateRejectsOversizeDimensions(t *testing.T) {
	cfg := enumerate.Config{Width: 9, Height: 8, OutputPath: "out.jsonl"} // 72 > 64
	if err := cfg.Validate(); !errors.Is(err, enumerate.ErrInvalidDimensions) {
		t.Errorf("Validate err = %v, want ErrInvalidDimensions", err)
	}
}

func TestValidateRejectsLastIDPastLimit(t *testing.T) {
	cfg := enumerate.Config{Width: 2, Height: 2, LastID: 17, OutputPath: "out.jsonl"}
	if err := cfg.Validate(); !errors.Is(err, enumerate.ErrInvalidRange) {
		t.Errorf("Validate err = %v, want ErrInvalidRange", err)
	}
}

func TestValidateAcceptsMaximumSixtyFourCellBoard(t *testing.T) {
	cfg := enumerate.Config{Width: 8, Height: 8, OutputPath: "out.jsonl"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.LastID != ^uint64(0) {
		t.Errorf("LastID = %d, want %d", cfg.LastID, ^uint64(0))
	}
}

func TestValidateAcceptsExplicitLastIDOnSixtyFourCellBoard(t *testing.T) {
	cfg := enumerate.Config{Width: 8, Height: 8, StartID: 10, LastID: 1_000_000, OutputPath: "out.jsonl"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.LastID != 1_000_000 {
		t.Errorf("LastID = %d, want 1000000 (left untouched)", cfg.LastID)
	}
}

func TestValidateRejectsLastIDNotAfterStartID(t *testing.T) {
	cfg := enumerate.Config{Width: 2, Height: 2, StartID: 5, LastID: 5, OutputPath: "out.jsonl"}
	if err := cfg.Validate(); !errors.Is(err, enumerate.ErrInvalidRange) {
		t.Errorf("Validate err = %v, want ErrInvalidRange", err)
	}
}

func TestValidateRejectsEmptyOutputPath(t *testing.T) {
	cfg := enumerate.Config{Width: 2, Height: 2}
	if err := cfg.Validate(); !errors.Is(err, enumerate.ErrNoOutputPath) {
		t.Errorf("Validate err = %v, want ErrNoOutputPath", err)
	}
}
