package compat

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsRelease reports whether version parses as semver. Development builds
// ("dev", "unknown") are not releases.
func IsRelease(version string) bool {
	_, err := parseSemver(version)
	return err == nil
}

// Satisfies reports whether version meets constraint (e.g. ">= 0.2, < 1").
// An empty constraint or a non-release version always satisfies, so
// development builds show every topic. Prerelease versions are compared by
// their release part.
func Satisfies(version, constraint string) (bool, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return true, nil
	}
	c, err := ParseConstraint(constraint)
	if err != nil {
		return false, err
	}
	if !IsRelease(version) {
		return true, nil
	}
	v, err := parseSemver(version)
	if err != nil {
		return false, err
	}
	if v.Prerelease() != "" {
		release, err := v.SetPrerelease("")
		if err == nil {
			v = &release
		}
	}
	return c.Check(v), nil
}

// ParseConstraint parses a semver constraint expression.
func ParseConstraint(constraint string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
