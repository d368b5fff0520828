// pondus.go: version and default limits
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package pondus

const (
	// Version of Pondus cache library
	Version = "v0.1.0-dev"

	// DefaultMaxCount is the default number of maximal-weight items the cache can hold
	DefaultMaxCount = 1024

	// DefaultMaxItemWeight is the default maximum weight of a single item
	DefaultMaxItemWeight = 4096
)
