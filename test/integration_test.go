// ABOUTME: Integration tests for the fitplan CLI.
// ABOUTME: Builds the binary and drives the profile/plan/track workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "fitplan")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fitplan")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Isolate data and config in a temp dir
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, append(args, "--user", "tester")...)
		cmd.Env = append(os.Environ(),
			"FITPLAN_DATA_DIR="+filepath.Join(tmpDir, "data"),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Create a profile
	output, err := run("profile", "create",
		"--age", "30", "--gender", "male",
		"--height", "180", "--weight", "80",
		"--goal", "maintain", "--activity", "moderate")
	if err != nil {
		t.Fatalf("Failed to create profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Profile saved") {
		t.Errorf("Expected 'Profile saved' in output, got: %s", output)
	}
	if !strings.Contains(output, "BMR 1780") {
		t.Errorf("Expected 'BMR 1780' in output, got: %s", output)
	}

	// Generate the plan
	output, err = run("plan")
	if err != nil {
		t.Fatalf("Failed to show plan: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Daily calories") {
		t.Errorf("Expected 'Daily calories' in plan output, got: %s", output)
	}
	if !strings.Contains(output, "breakfast") {
		t.Errorf("Expected 'breakfast' in plan output, got: %s", output)
	}

	// Track steps
	output, err = run("track", "steps", "8500")
	if err != nil {
		t.Fatalf("Failed to track steps: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Steps set to 8500") {
		t.Errorf("Expected 'Steps set to 8500' in output, got: %s", output)
	}

	// Default glass of water
	output, err = run("track", "water")
	if err != nil {
		t.Fatalf("Failed to track water: %v\n%s", err, output)
	}
	if !strings.Contains(output, "250 ml") {
		t.Errorf("Expected '250 ml' in output, got: %s", output)
	}

	// Complete a meal
	output, err = run("track", "meal", "breakfast")
	if err != nil {
		t.Fatalf("Failed to track meal: %v\n%s", err, output)
	}
	if !strings.Contains(output, "breakfast completed") {
		t.Errorf("Expected 'breakfast completed' in output, got: %s", output)
	}

	// Invalid input is rejected
	if output, err = run("track", "sleep", "25"); err == nil {
		t.Errorf("Expected sleep 25 to fail, got: %s", output)
	}

	// Today's stats
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "8500") {
		t.Errorf("Expected step count in stats output, got: %s", output)
	}

	// Weekly summary covers 7 days
	output, err = run("week")
	if err != nil {
		t.Fatalf("Failed to show week: %v\n%s", err, output)
	}
	if !strings.Contains(output, "8500 steps") {
		t.Errorf("Expected '8500 steps' in week totals, got: %s", output)
	}

	// Export as JSON
	output, err = run("export", "--format", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"tool": "fitplan"`) {
		t.Errorf("Expected tool field in export output, got: %s", output)
	}
}
