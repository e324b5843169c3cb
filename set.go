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

import "fmt"

// Set is a fixed-width set of bits, addressed by 0-based bit index. The width
// W fixes both the number of bits and the number of uint32 words storing
// them: word i holds the bits [32*i, 32*i+32), with the least significant
// bit of word i being bit 32*i.
//
// The zero value is the empty set. Sets are plain values: assignment copies
// all words, so each copy is independent. Sets are comparable and thus can be
// used as map keys.
//
// Bit indices must be less than the width's number of bits; out-of-range
// indices panic before any bit gets touched.
type Set[W Width] struct {
	words W
}

// NewSingle returns a new Set with only the specified bit set.
func NewSingle[W Width](bit uint) Set[W] {
	var s Set[W]
	s.Set(bit)
	return s
}

// FromWords returns a Set using the specified words as its storage. Any
// padding bits beyond the width in the last word are taken as is.
func FromWords[W Width](words W) Set[W] {
	return Set[W]{words: words}
}

// Words returns a copy of the words storing this set's bits.
func (s Set[W]) Words() W {
	return s.words
}

// Len returns the number of bits in this set's width, regardless of
// whether these bits are set or not.
func (s Set[W]) Len() uint {
	return width[W]()
}

// IsSet reports whether bit is in this set.
func (s Set[W]) IsSet(bit uint) bool {
	idx, mask := locate[W](bit)
	return s.words[idx]&mask != 0
}

// Set adds bit to this set; it is a no-op if the bit is already set.
func (s *Set[W]) Set(bit uint) {
	idx, mask := locate[W](bit)
	s.words[idx] |= mask
}

// Unset removes bit from this set; it is a no-op if the bit is already unset.
func (s *Set[W]) Unset(bit uint) {
	idx, mask := locate[W](bit)
	s.words[idx] &^= mask
}

// Flip toggles bit in this set.
func (s *Set[W]) Flip(bit uint) {
	idx, mask := locate[W](bit)
	s.words[idx] ^= mask
}

// width returns the number of bits of W after checking that these bits fit
// W's words without leaving a completely unused word.
func width[W Width]() uint {
	var w W
	bits, words := w.Bits(), uint(len(w))
	if bits == 0 || bits > words*wordbits || bits <= (words-1)*wordbits {
		panic(fmt.Sprintf("width %T of %d bits does not fit %d words", w, bits, words))
	}
	return bits
}

// lastWordMask returns the mask of the bits in the last word that lie within
// the width of W.
func lastWordMask[W Width]() uint32 {
	if rem := width[W]() % wordbits; rem != 0 {
		return uint32(1)<<rem - 1
	}
	return ^uint32(0)
}

// locate returns the index of the word containing bit, together with the
// mask for bit within that word.
func locate[W Width](bit uint) (int, uint32) {
	if n := width[W](); bit >= n {
		panic(fmt.Sprintf("bit %d out of range 0-%d", bit, n-1))
	}
	return int(bit / wordbits), uint32(1) << (bit % wordbits)
}
