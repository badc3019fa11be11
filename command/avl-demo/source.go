// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"
)

// KeySource - supplies the keys to insert
type KeySource interface {
	Key() int64
}

type randomSource struct {
	r       *rand.Rand
	minimum int64
	span    uint64 // zero when the range covers every int64
	limit   uint64 // draws at or above this are rejected to avoid modulo bias
}

// pseudo random keys in [minimum, maximum], the same seed always
// gives the same sequence
//
// the span is computed in uint64 so any range with minimum <= maximum
// is valid, including ranges wider than the positive int64 values
func newRandomSource(seed int64, minimum int64, maximum int64) KeySource {
	span := uint64(maximum-minimum) + 1
	limit := uint64(0)
	if 0 != span {
		limit = math.MaxUint64 - math.MaxUint64%span
	}
	return &randomSource{
		r:       rand.New(rand.NewSource(seed)),
		minimum: minimum,
		span:    span,
		limit:   limit,
	}
}

func (s *randomSource) Key() int64 {
	if 0 == s.span {
		return int64(s.r.Uint64())
	}
	v := s.r.Uint64()
	for v >= s.limit {
		v = s.r.Uint64()
	}
	return int64(uint64(s.minimum) + v%s.span)
}
