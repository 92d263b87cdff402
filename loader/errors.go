// SPDX-License-Identifier: MIT

package loader

import "errors"

var (
	// ErrFormat is returned for malformed input or an unknown file extension.
	ErrFormat = errors.New("loader: bad graph format")

	// ErrGraphNil is returned when a writer or Info is given a nil graph.
	ErrGraphNil = errors.New("loader: graph is nil")
)
