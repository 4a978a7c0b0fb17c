package main

import (
	"testing"

	conf "github.com/bartek5186/bwimport/internal/config"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Parse([]string{"--examples", "/tmp/ex", "--orders"}); err != nil {
		t.Fatal(err)
	}

	cfg := conf.Default()
	cfg.DBPath = "/data/blackwoods.db"
	cfg.Encoding = "windows-1252"

	opts := cliOptions{examples: "/tmp/ex", orders: true}
	applyFlags(cmd, opts, cfg)

	if cfg.ExamplesDir != "/tmp/ex" || !cfg.ImportOrders {
		t.Fatalf("changed flags not applied: %+v", cfg)
	}
	if cfg.DBPath != "/data/blackwoods.db" || cfg.Encoding != "windows-1252" {
		t.Fatalf("untouched flags overrode config: %+v", cfg)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}
