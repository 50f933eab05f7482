package main

import (
	"bytes"
	"errors"
	stdio "io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exercises/change"
	"exercises/internal/config"
	"exercises/io"
	"exercises/math"
)

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(&app{cfg: cfg, logger: log.New(stdio.Discard, "", 0)})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func defaultConfig() config.Config {
	return config.Config{Locale: "und", PowersBase: 2, PowersLimit: 10}
}

func TestChangeCommand(t *testing.T) {
	out, err := run(t, defaultConfig(), "change", "48")
	if err != nil {
		t.Fatalf("change: %v", err)
	}
	if out != "25:1 10:2 5:0 1:3\n" {
		t.Errorf("change: expected %q, got %q", "25:1 10:2 5:0 1:3\n", out)
	}

	if _, err := run(t, defaultConfig(), "change", "3.5"); !errors.Is(err, change.ErrNotInteger) {
		t.Errorf("change 3.5: expected ErrNotInteger, got %v", err)
	}
	if _, err := run(t, defaultConfig(), "change", "-1"); !errors.Is(err, change.ErrNegativeAmount) {
		t.Errorf("change -1: expected ErrNegativeAmount, got %v", err)
	}
}

func TestFirstCommand(t *testing.T) {
	out, err := run(t, defaultConfig(), "first", "--prefix", "B", "AA", "BB")
	if err != nil || out != "bb\n" {
		t.Errorf("first: expected %q, got %q (%v)", "bb\n", out, err)
	}

	if _, err := run(t, defaultConfig(), "first", "--prefix", "C", "AA", "BB"); !errors.Is(err, errNoMatch) {
		t.Errorf("first: expected errNoMatch, got %v", err)
	}
}

func TestPowersCommand(t *testing.T) {
	out, err := run(t, defaultConfig(), "powers")
	if err != nil || out != "1\n2\n4\n8\n" {
		t.Errorf("powers: expected 1 2 4 8, got %q (%v)", out, err)
	}

	out, err = run(t, defaultConfig(), "powers", "--base", "3", "--limit", "30")
	if err != nil || out != "1\n3\n9\n27\n" {
		t.Errorf("powers --base 3: expected 1 3 9 27, got %q (%v)", out, err)
	}
}

func TestSayCommand(t *testing.T) {
	out, err := run(t, defaultConfig(), "say", "hi", "there")
	if err != nil || out != "hi there\n" {
		t.Errorf("say: expected %q, got %q (%v)", "hi there\n", out, err)
	}
}

func TestLinesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("a\n\n# b\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, defaultConfig(), "lines", path)
	if err != nil || out != "2\n" {
		t.Errorf("lines: expected 2, got %q (%v)", out, err)
	}

	var nsf *io.NoSuchFileError
	if _, err := run(t, defaultConfig(), "lines", path+".missing"); !errors.As(err, &nsf) {
		t.Errorf("lines: expected NoSuchFileError, got %v", err)
	}
}

func TestQuatCommand(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"show", "0", "0", "0", "0"}, "0\n"},
		{[]string{"show", "1", "2", "0", "0"}, "1+2i\n"},
		{[]string{"show", "0", "-1", "0", "0"}, "-i\n"},
		{[]string{"show", "-2.5", "0", "0", "-1"}, "-2.5-k\n"},
		{[]string{"conj", "1", "2", "3", "4"}, "1-2i-3j-4k\n"},
		{[]string{"norm", "1", "1", "1", "1"}, "2\n"},
		{[]string{"inverse", "2", "0", "0", "0"}, "0.5\n"},
		{[]string{"add", "1", "2", "3", "4", "1", "-2", "0", "0"}, "2+3j+4k\n"},
		{[]string{"mul", "0", "1", "0", "0", "0", "0", "1", "0"}, "k\n"},
		{[]string{"mul", "0", "0", "1", "0", "0", "1", "0", "0"}, "-k\n"},
	}

	for _, tt := range tests {
		out, err := run(t, defaultConfig(), append([]string{"quat"}, tt.args...)...)
		if err != nil || out != tt.expected {
			t.Errorf("quat %v: expected %q, got %q (%v)", tt.args, tt.expected, out, err)
		}
	}

	for _, args := range [][]string{
		{"quat", "add", "1", "2", "3", "4"},
		{"quat", "show", "1", "2", "3", "x"},
		{"quat", "show", "1", "2", "3", "4", "5"},
		{"quat", "spin", "1", "2", "3", "4"},
	} {
		if _, err := run(t, defaultConfig(), args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestGLTFCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gltf")
	err := io.SaveGLTFRotations(path, []io.NodeRotation{
		{Name: "root", Rotation: math.Identity},
		{Name: "flip", Rotation: math.I},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := run(t, defaultConfig(), "gltf", path)
	if err != nil {
		t.Fatalf("gltf: %v", err)
	}
	if !strings.Contains(out, "root\t1\n") || !strings.Contains(out, "flip\ti\n") {
		t.Errorf("gltf: unexpected output %q", out)
	}
}
