package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSanitizePath_ValidPaths verifies that valid paths within the base directory are allowed
func TestSanitizePath_ValidPaths(t *testing.T) {
	tempDir := t.TempDir()

	testCases := []struct {
		name     string
		basePath string
		userPath string
		wantPath string
	}{
		{
			name:     "simple relative path",
			basePath: tempDir,
			userPath: "config.properties",
			wantPath: filepath.Join(tempDir, "config.properties"),
		},
		{
			name:     "nested relative path",
			basePath: tempDir,
			userPath: "catalog/hive.properties",
			wantPath: filepath.Join(tempDir, "catalog", "hive.properties"),
		},
		{
			name:     "empty user path returns base",
			basePath: tempDir,
			userPath: "",
			wantPath: tempDir,
		},
		{
			name:     "path with dots that stays within base",
			basePath: tempDir,
			userPath: "foo/../node.properties",
			wantPath: filepath.Join(tempDir, "node.properties"),
		},
		{
			name:     "absolute path within base",
			basePath: tempDir,
			userPath: filepath.Join(tempDir, "node.properties"),
			wantPath: filepath.Join(tempDir, "node.properties"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizePath(tc.basePath, tc.userPath)
			if err != nil {
				t.Fatalf("SanitizePath(%q, %q) returned error: %v", tc.basePath, tc.userPath, err)
			}
			if got != tc.wantPath {
				t.Errorf("SanitizePath(%q, %q) = %q, want %q", tc.basePath, tc.userPath, got, tc.wantPath)
			}
		})
	}
}

// TestSanitizePath_PathTraversal verifies that path traversal attempts are blocked
func TestSanitizePath_PathTraversal(t *testing.T) {
	tempDir := t.TempDir()

	testCases := []struct {
		name     string
		userPath string
	}{
		{name: "simple parent traversal", userPath: "../outside"},
		{name: "multiple parent traversal", userPath: "../../outside"},
		{name: "traversal after valid path", userPath: "valid/../../outside"},
		{name: "absolute path outside base", userPath: "/etc/passwd"},
		{name: "traversal to root", userPath: "../../../../../../../../etc/passwd"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := SanitizePath(tempDir, tc.userPath); err == nil {
				t.Errorf("SanitizePath(%q, %q) should have returned an error for path traversal", tempDir, tc.userPath)
			}
		})
	}
}

// TestSanitizePath_EmptyBasePath verifies that empty base path is rejected
func TestSanitizePath_EmptyBasePath(t *testing.T) {
	if _, err := SanitizePath("", "some/path"); err == nil {
		t.Error("SanitizePath with empty base path should return an error")
	}
}

func TestResolveEtcFile(t *testing.T) {
	etc := t.TempDir()

	got, err := ResolveEtcFile(etc, NodeConfigFile)
	if err != nil {
		t.Fatalf("ResolveEtcFile returned error: %v", err)
	}
	if want := filepath.Join(etc, NodeConfigFile); got != want {
		t.Errorf("ResolveEtcFile = %q, want %q", got, want)
	}

	if _, err := ResolveEtcFile(etc, ""); err == nil {
		t.Error("ResolveEtcFile with empty name should return an error")
	}
	if _, err := ResolveEtcFile(etc, "../config.properties"); err == nil {
		t.Error("ResolveEtcFile should reject names outside the etc dir")
	}
}

// TestIsPathSecure verifies permission checking works
func TestIsPathSecure(t *testing.T) {
	tempDir := t.TempDir()

	securePath := filepath.Join(tempDir, "secure.properties")
	if err := os.WriteFile(securePath, []byte("a=b\n"), 0o600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := os.Chmod(securePath, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	isSecure, err := IsPathSecure(securePath, StandardFilePermissions)
	if err != nil {
		t.Fatalf("IsPathSecure returned error: %v", err)
	}
	if !isSecure {
		t.Error("Path with 0600 should be considered secure for max 0644")
	}

	insecurePath := filepath.Join(tempDir, "insecure.properties")
	if err := os.WriteFile(insecurePath, []byte("a=b\n"), 0o600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	// WriteFile is subject to umask; chmod sets the exact bits.
	if err := os.Chmod(insecurePath, 0o666); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	isSecure, err = IsPathSecure(insecurePath, StandardFilePermissions)
	if err != nil {
		t.Fatalf("IsPathSecure returned error: %v", err)
	}
	if isSecure {
		t.Error("Path with 0666 should NOT be considered secure for max 0644")
	}

	isSecure, err = IsPathSecure(filepath.Join(tempDir, "nonexistent"), StandardFilePermissions)
	if err != nil {
		t.Fatalf("IsPathSecure returned error for non-existent: %v", err)
	}
	if !isSecure {
		t.Error("Non-existent path should be considered secure")
	}
}
