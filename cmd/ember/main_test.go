package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

// runCLI executes the command line the way main does and restores the
// global flag state afterwards.
func runCLI(t *testing.T, args ...string) int {
	t.Helper()
	oldResources, oldLevel, oldLogFile := flagResources, flagLogLevel, flagLogFile
	oldLogger := log.Default()
	t.Cleanup(func() {
		flagResources, flagLogLevel, flagLogFile = oldResources, oldLevel, oldLogFile
		log.SetDefault(oldLogger)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(args)
	return run()
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // restores the original value on cleanup
		os.Unsetenv(k)
	}
}

func TestDotEnvSetsFlagDefaults(t *testing.T) {
	unsetEnv(t, "EMBER_RESOURCES", "EMBER_LOG_LEVEL")
	dir := t.TempDir()
	resources := filepath.Join(dir, "from-env")
	dotenv := "EMBER_RESOURCES=" + resources + "\nEMBER_LOG_LEVEL=warn\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)

	// The directory does not exist, so the check itself fails.
	runCLI(t, "assets", "check", "--log-file", filepath.Join(dir, "ember.log"))

	if flagResources != resources {
		t.Errorf("flagResources = %q, expected %q from .env", flagResources, resources)
	}
	if flagLogLevel != "warn" {
		t.Errorf("flagLogLevel = %q, expected warn from .env", flagLogLevel)
	}
}

func TestFlagOverridesDotEnv(t *testing.T) {
	unsetEnv(t, "EMBER_RESOURCES", "EMBER_LOG_LEVEL")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EMBER_RESOURCES=/from/env\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)

	explicit := filepath.Join(dir, "explicit")
	runCLI(t, "assets", "check", "--resources", explicit, "--log-file", filepath.Join(dir, "ember.log"))

	if flagResources != explicit {
		t.Errorf("flagResources = %q, expected the --resources value %q", flagResources, explicit)
	}
}
