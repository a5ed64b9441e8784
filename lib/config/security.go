package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// StandardFilePermissions is the loosest mode a property file should have.
const StandardFilePermissions = 0o644

// SanitizePath resolves userPath against basePath and returns the absolute
// result. It fails if the result would escape basePath. An empty userPath
// yields basePath itself.
func SanitizePath(basePath, userPath string) (string, error) {
	if basePath == "" {
		return "", oops.Errorf("base path cannot be empty")
	}
	base, err := filepath.Abs(basePath)
	if err != nil {
		return "", oops.Wrapf(err, "invalid base path %q", basePath)
	}
	if userPath == "" {
		return base, nil
	}

	target := userPath
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return "", oops.Wrapf(err, "invalid path %q", userPath)
	}

	if !withinDir(base, target) {
		log.WithFields(logger.Fields{
			"at":            "SanitizePath",
			"reason":        "path_traversal_attempt",
			"base_path":     base,
			"resolved_path": target,
		}).Warn("potential path traversal blocked")
		return "", oops.Errorf("path %q escapes base directory %q", userPath, basePath)
	}
	return target, nil
}

func withinDir(dir, path string) bool {
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}

// ResolveEtcFile returns the absolute path of name inside etcDir.
func ResolveEtcFile(etcDir, name string) (string, error) {
	if name == "" {
		return "", oops.Errorf("property file name cannot be empty")
	}
	return SanitizePath(etcDir, name)
}

// IsPathSecure reports whether path has no permission bits outside maxMode.
// Missing paths count as secure.
func IsPathSecure(path string, maxMode os.FileMode) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}

	if info.Mode().Perm()&^maxMode != 0 {
		return false, nil
	}
	return true, nil
}

// warnIfInsecure logs a warning when a property file is writable by group or
// others. Property files may carry paths to TLS keys.
func warnIfInsecure(path string) {
	secure, err := IsPathSecure(path, StandardFilePermissions)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":   "warnIfInsecure",
			"path": path,
		}).Debug("could not stat property file")
		return
	}
	if !secure {
		log.WithFields(logger.Fields{
			"at":       "warnIfInsecure",
			"reason":   "loose_file_permissions",
			"path":     path,
			"max_mode": "0644",
		}).Warn("property file is writable by group or others")
	}
}
