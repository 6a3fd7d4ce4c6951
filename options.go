// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import "go.uber.org/zap"

type options struct {
	logger    *zap.Logger
	capacity  int
	cacheSize int
}

// Option configures a Tree at construction time.
type Option func(*options)

// WithLogger sets the logger used for construction and validation
// events. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity preallocates the node arena for roughly symbols input
// symbols in total. A tree over n symbols has at most 2n nodes.
func WithCapacity(symbols int) Option {
	return func(o *options) {
		if symbols > 0 {
			o.capacity = 2 * symbols
		}
	}
}

// WithSearchCache memoizes up to size Search answers. The cache is
// emptied whenever a sequence is added.
func WithSearchCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}
