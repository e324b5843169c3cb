// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package fixbits

import (
	"fmt"
	"math/bits"
	"strings"
)

// Count returns the number of bits set, ignoring any padding bits beyond
// the width.
func (s Set[W]) Count() uint {
	last := len(s.words) - 1
	count := bits.OnesCount32(s.words[last] & lastWordMask[W]())
	for i := 0; i < last; i++ {
		count += bits.OnesCount32(s.words[i])
	}
	return uint(count)
}

// IsEmpty returns true if no bits are set, ignoring any padding bits beyond
// the width.
func (s Set[W]) IsEmpty() bool {
	last := len(s.words) - 1
	for i := 0; i < last; i++ {
		if s.words[i] != 0 {
			return false
		}
	}
	return s.words[last]&lastWordMask[W]() == 0
}

// String returns the bits set in textual list format, with individual bit
// ranges “x-y” separated by “,” and single bit ranges collapsed into “x”. The
// empty set gives the empty string. Padding bits beyond the width never show.
func (s Set[W]) String() string {
	return s.ranges().String()
}

// bitRanges is a list of [from...to] bit ranges, ordered from lowest to
// highest without overlaps.
type bitRanges [][2]uint

func (r bitRanges) String() string {
	var b strings.Builder
	for _, bitrange := range r {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		from, to := bitrange[0], bitrange[1]
		if from == to {
			fmt.Fprintf(&b, "%d", from)
		} else {
			fmt.Fprintf(&b, "%d-%d", from, to)
		}
	}
	return b.String()
}

// ranges returns the ranges of consecutive bits set, skipping over all-0s
// words.
func (s Set[W]) ranges() bitRanges {
	r := bitRanges{}
	n := width[W]()
	inRange := false
	var from uint
	for bit := uint(0); bit < n; bit++ {
		word := s.words[bit/wordbits]
		if !inRange && word == 0 {
			// fast-forward to the last bit of this empty word and let the loop
			// increment take us into the next word.
			bit |= wordbits - 1
			continue
		}
		isSet := word&(uint32(1)<<(bit%wordbits)) != 0
		switch {
		case isSet && !inRange:
			from, inRange = bit, true
		case !isSet && inRange:
			r = append(r, [2]uint{from, bit - 1})
			inRange = false
		}
	}
	if inRange {
		r = append(r, [2]uint{from, n - 1})
	}
	return r
}
