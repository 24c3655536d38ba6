package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.Threshold != 180 {
		t.Errorf("Threshold: got %d, want 180", p.Threshold)
	}
	if p.LineKernelWidth != 40 || p.LineKernelHeight != 1 {
		t.Errorf("Line kernel: got %dx%d, want 40x1", p.LineKernelWidth, p.LineKernelHeight)
	}
	if p.MinLineWidth != 20 {
		t.Errorf("MinLineWidth: got %d, want 20", p.MinLineWidth)
	}
	if p.BandLow != 0.2 || p.BandHigh != 0.8 {
		t.Errorf("Band: got [%.2f, %.2f], want [0.2, 0.8]", p.BandLow, p.BandHigh)
	}

	if err := p.Validate(); err != nil {
		t.Errorf("Default params should validate: %v", err)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	content := "threshold: 200\nmin_line_width: 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p.Threshold != 200 {
		t.Errorf("Threshold override: got %d, want 200", p.Threshold)
	}
	if p.MinLineWidth != 30 {
		t.Errorf("MinLineWidth override: got %d, want 30", p.MinLineWidth)
	}
	// Untouched fields keep defaults
	if p.LineKernelWidth != 40 {
		t.Errorf("LineKernelWidth should keep default 40, got %d", p.LineKernelWidth)
	}
	if p.Pad != 10 {
		t.Errorf("Pad should keep default 10, got %d", p.Pad)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("threshold: [not a number"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero line kernel width", func(p *Params) { p.LineKernelWidth = 0 }},
		{"zero text kernel height", func(p *Params) { p.TextKernelHeight = 0 }},
		{"zero dilate kernel", func(p *Params) { p.DilateKernelWidth = 0 }},
		{"zero min line width", func(p *Params) { p.MinLineWidth = 0 }},
		{"negative pad", func(p *Params) { p.Pad = -1 }},
		{"inverted band", func(p *Params) { p.BandLow = 0.9 }},
		{"band above one", func(p *Params) { p.BandHigh = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
