package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/design2/chili/pkg/graphics"
	"github.com/design2/chili/pkg/shadowlayout"
)

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(renderOptions) bool
	}{
		{"defaults", []string{"--style", "a.yaml"}, false, func(o renderOptions) bool {
			return o.out == "out.png" && o.width == 200 && o.height == 100 && o.margin == 16 && o.count == 1
		}},
		{"all flags", []string{"--style", "a.yaml", "-o", "b.png", "--width", "64", "--height", "32.5", "--margin", "0", "--count", "3", "--background", "#FFFFFF"}, false, func(o renderOptions) bool {
			return o.out == "b.png" && o.width == 64 && o.height == 32.5 && o.margin == 0 && o.count == 3 && o.background == graphics.ColorWhite
		}},
		{"inline values", []string{"--style=a.yaml", "--width=10"}, false, func(o renderOptions) bool {
			return o.style == "a.yaml" && o.width == 10
		}},
		{"missing style", []string{"--width", "10"}, true, nil},
		{"missing value", []string{"--style"}, true, nil},
		{"bad number", []string{"--style", "a.yaml", "--width", "wide"}, true, nil},
		{"negative", []string{"--style", "a.yaml", "--margin", "-1"}, true, nil},
		{"zero width", []string{"--style", "a.yaml", "--width", "0"}, true, nil},
		{"fractional count", []string{"--style", "a.yaml", "--count", "1.5"}, true, nil},
		{"bad color", []string{"--style", "a.yaml", "--background", "red"}, true, nil},
		{"unknown flag", []string{"--style", "a.yaml", "--depth", "2"}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRenderArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(opts) {
				t.Errorf("parseRenderArgs(%v) = %+v", tt.args, opts)
			}
		})
	}
}

func TestRenderStyle(t *testing.T) {
	st := &shadowlayout.Style{Attributes: shadowlayout.Attributes{BackgroundColor: "#FF0000"}}
	canvas := renderStyle(st, renderOptions{width: 20, height: 10, margin: 5, count: 2})

	img := canvas.Image()
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, want 30x30", b)
	}
	for _, pt := range [][2]int{{15, 10}, {15, 20}} {
		if px := img.RGBAAt(pt[0], pt[1]); px.R != 0xFF || px.A != 0xFF {
			t.Errorf("pixel %v = %+v, want red", pt, px)
		}
	}
	if px := img.RGBAAt(1, 1); px.A != 0 {
		t.Errorf("margin pixel = %+v, want transparent", px)
	}
}

func TestRenderStyle_Background(t *testing.T) {
	st := &shadowlayout.Style{}
	canvas := renderStyle(st, renderOptions{width: 4, height: 4, margin: 2, count: 1, background: graphics.ColorBlue})
	if px := canvas.Image().RGBAAt(0, 0); px.B != 0xFF || px.A != 0xFF {
		t.Errorf("corner pixel = %+v, want blue", px)
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	stylePath := filepath.Join(dir, "card.yaml")
	outPath := filepath.Join(dir, "card.png")
	style := "background_color: \"#00FF00\"\nbackground_radius: 4\n"
	if err := os.WriteFile(stylePath, []byte(style), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{"render", "--style", stylePath, "--out", outPath, "--width", "40", "--height", "20", "--margin", "4"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 28 {
		t.Errorf("bounds = %v, want 48x28", b)
	}
	if _, g, _, a := img.At(24, 14).RGBA(); g>>8 != 0xFF || a>>8 != 0xFF {
		t.Errorf("center pixel = %v, want green", img.At(24, 14))
	}
}

func TestRunRender_VersionGate(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		requires string
		wantErr  bool
	}{
		{"dev build too old", "0.1.0-dev", "v9.0.0", true},
		{"dev build of required release", "0.1.0-dev", "v0.1.0", false},
		{"release without prefix", "0.2.0", "0.1.5", false},
		{"release too old", "v0.2.0", "v0.3.0", true},
		{"unversioned build", "unknown", "v9.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			stylePath := filepath.Join(dir, "style.yaml")
			if err := os.WriteFile(stylePath, []byte("requires: "+tt.requires+"\n"), 0o644); err != nil {
				t.Fatal(err)
			}

			old := Version
			Version = tt.version
			t.Cleanup(func() { Version = old })

			err := runRender([]string{"--style", stylePath, "--out", filepath.Join(dir, "x.png"), "--width", "8", "--height", "8"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runRender error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "requires chili "+tt.requires) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	if err := run([]string{"paint"}); err == nil {
		t.Error("expected error for unknown command")
	}
	if err := run([]string{"--log-file"}); err == nil {
		t.Error("expected error for --log-file without a path")
	}
	if err := run([]string{"render", "--style", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for a missing style file")
	}
}

func TestRun_LogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "chili.log")
	stylePath := filepath.Join(dir, "bad.yaml")
	// The malformed colour is reported through the error handler.
	if err := os.WriteFile(stylePath, []byte("background_color: blue\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := run([]string{"--log-file=" + logPath, "render", "--style", stylePath, "--out", filepath.Join(dir, "bad.png")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("WARN")) || !bytes.Contains(data, []byte("kind=parsing")) {
		t.Errorf("log file missing parse warning:\n%s", data)
	}
}

func TestLogFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "boom",
		Data:    logrus.Fields{"module": "render", "kind": "range"},
	}
	out, err := (&logFormatter{}).Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	want := "[ERROR 2024-05-01 12:30:00] [      render] boom kind=range\n"
	if string(out) != want {
		t.Errorf("Format = %q, want %q", out, want)
	}
}
