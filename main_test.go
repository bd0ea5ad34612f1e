package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroid-gol/model"
	"github.com/sheikhrachel/toroid-gol/utils"
)

func TestParseConfigFlags(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stderr bytes.Buffer
	config, err := parseConfig([]string{
		"-board_size", "30", "-fps", "4", "-duration", "2.5", "-init_conditions", "init_tee", "-parallel",
	}, &stderr)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.BoardSize != 30 || config.FPS != 4 || config.Duration != 2.5 ||
		config.InitPattern != "init_tee" || !config.UseParallel {
		t.Fatalf("parseConfig() = %+v", config)
	}
	if n := config.FrameCount(); n != 10 {
		t.Fatalf("FrameCount() = %d, want 10", n)
	}
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"board_size": 12, "fps": 3}`), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := parseConfig([]string{"-config", path, "-fps", "6"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.BoardSize != 12 || config.FPS != 6 {
		t.Fatalf("parseConfig() = %+v", config)
	}
}

func TestParseConfigErrors(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	tests := [][]string{
		{"-board_size", "0"},
		{"-fps", "-1"},
		{"-config", filepath.Join(dir, "missing.json")},
		{"-no_such_flag"},
	}
	for _, args := range tests {
		if _, err := parseConfig(args, &bytes.Buffer{}); err == nil {
			t.Fatalf("parseConfig(%v) succeeded", args)
		}
	}
}

func testConfig(pattern string) utils.Config {
	config := utils.DefaultConfig()
	config.InitPattern = pattern
	config.ClearScreen = false
	config.Duration = 2
	config.FPS = 5
	return config
}

func TestRunGame(t *testing.T) {
	var (
		out    bytes.Buffer
		sleeps int
	)
	renderer := &model.TerminalRenderer{Out: &out}
	sleep := func(d time.Duration) {
		if d != 200*time.Millisecond {
			t.Fatalf("sleep(%v), want 200ms", d)
		}
		sleeps++
	}

	err := runGame(testConfig("init_glider"), rand.New(rand.NewSource(1)), renderer, &out, nil, sleep)
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if sleeps != 10 {
		t.Fatalf("rendered %d frames, want 10", sleeps)
	}
	for _, want := range []string{"Pattern: init_glider", "Gen: 9 | Living: 5", "Finished 10 generations"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunGameStopsWhenStagnant(t *testing.T) {
	var out bytes.Buffer
	config := testConfig("init_beehive")
	config.StagnationThreshold = 2

	err := runGame(config, rand.New(rand.NewSource(1)), &model.TerminalRenderer{Out: &out}, &out, nil, func(time.Duration) {})
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if !strings.Contains(out.String(), "stopping early") {
		t.Fatalf("beehive run did not stop early:\n%s", out.String())
	}
}

func TestRunGameStopsOnSignal(t *testing.T) {
	var out bytes.Buffer
	sigChan := make(chan os.Signal, 1)
	sigChan <- os.Interrupt

	err := runGame(testConfig("init_blinker"), rand.New(rand.NewSource(1)), &model.TerminalRenderer{Out: &out}, &out, sigChan, func(time.Duration) {})
	if err != nil {
		t.Fatalf("runGame: %v", err)
	}
	if !strings.Contains(out.String(), "Final stats: 0 generations") {
		t.Fatalf("signal not handled:\n%s", out.String())
	}
}

func TestRunGameUnknownPattern(t *testing.T) {
	err := runGame(testConfig("init_nothing"), rand.New(rand.NewSource(1)), &model.TerminalRenderer{Out: &bytes.Buffer{}}, &bytes.Buffer{}, nil, func(time.Duration) {})
	if errors.Cause(err) != model.ErrInvalidArgument {
		t.Fatalf("runGame error = %v, want ErrInvalidArgument", err)
	}
}
