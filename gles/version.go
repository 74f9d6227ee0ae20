// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"fmt"
	"strconv"
)

// Version is a parsed GL version number.
type Version struct {
	Major int
	Minor int
}

// AtLeast reports whether v is the same as or newer than major.minor.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// ParseVersion parses the string returned by GetString(VERSION).
//
// Embedded drivers report "OpenGL ES <major>.<minor> <vendor info>",
// desktop drivers report "<major>.<minor>[.release] <vendor info>".
// Both shapes are accepted; anything else is an error, which callers
// treat as an invalid function table.
func ParseVersion(s string) (Version, error) {
	var v Version
	if _, err := fmt.Sscanf(s, "OpenGL ES %d.%d", &v.Major, &v.Minor); err == nil {
		return v, nil
	}
	if _, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor); err == nil {
		return v, nil
	}
	return Version{}, fmt.Errorf("gles: cannot parse version string %q", s)
}
