// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnset = "N/A"

// BuildInfo is the build metadata injected with -ldflags "-X main.buildVersion=...".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills unset values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orUnset := func(s string) string {
		if s == "" {
			return buildInfoUnset
		}
		return s
	}

	return BuildInfo{
		Version: orUnset(version),
		Date:    orUnset(date),
		Commit:  orUnset(commit),
	}
}

// String renders the three lines printed on start-up.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}
