package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/postdeck/postdeck/internal/setup"
)

// run executes the root command with args and an isolated home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("POSTDECK_CONFIG", "")

	cfgFile, calendarMonth, calendarCount = "", "", 1

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalendarCommand(t *testing.T) {
	out, err := run(t, "calendar", "--month", "2024-06")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}

	for _, want := range []string{"June 2024", "Mo Tu We Th Fr Sa Su", "                1  2", "24 25 26 27 28 29 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestCalendarCommandCount(t *testing.T) {
	out, err := run(t, "calendar", "-m", "2024-12", "-n", "2")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if !strings.Contains(out, "December 2024") || !strings.Contains(out, "January 2025") {
		t.Errorf("Expected December and January:\n%s", out)
	}
}

func TestCalendarCommandErrors(t *testing.T) {
	tests := [][]string{
		{"calendar", "--month", "June"},
		{"calendar", "--month", "2024-13"},
		{"calendar", "--count", "0"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, args...); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != "postdeck "+version {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestSetupWithoutPackageManager(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "postdeckrc")
	if err := os.WriteFile(rc, []byte("set package_manager \"\"\nset log_level error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "setup", "--config", rc)
	if !errors.Is(err, setup.ErrNoPackageManager) {
		t.Errorf("Expected ErrNoPackageManager, got %v", err)
	}
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "postdeckrc")
	if err := os.WriteFile(rc, []byte("set minute_step 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "calendar", "--config", rc); err == nil {
		t.Error("Expected config error")
	}
}
