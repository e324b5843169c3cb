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

// And returns the intersection of this set and another set as a new Set.
func (s Set[W]) And(another Set[W]) Set[W] {
	s.AndWith(another)
	return s
}

// Or returns the union of this set and another set as a new Set.
func (s Set[W]) Or(another Set[W]) Set[W] {
	s.OrWith(another)
	return s
}

// Xor returns the symmetric difference of this set and another set as a new
// Set.
func (s Set[W]) Xor(another Set[W]) Set[W] {
	s.XorWith(another)
	return s
}

// AndNot returns the bits of this set that are not in another set as a new
// Set.
func (s Set[W]) AndNot(another Set[W]) Set[W] {
	for i := 0; i < len(s.words); i++ {
		s.words[i] &^= another.words[i]
	}
	return s
}

// Not returns the complement of this set as a new Set.
//
// All bits of all words get flipped, including the padding bits beyond the
// width in the last word. Thus, Not(Not(s)) equals s, but sets built using
// Not do not equal sets built bit by bit from the same bits. Use [Set.Equal]
// and [Set.Less] with care on complemented sets.
func (s Set[W]) Not() Set[W] {
	for i := 0; i < len(s.words); i++ {
		s.words[i] = ^s.words[i]
	}
	return s
}

// AndWith intersects this set in place with another set.
func (s *Set[W]) AndWith(another Set[W]) {
	for i := 0; i < len(s.words); i++ {
		s.words[i] &= another.words[i]
	}
}

// OrWith adds the bits of another set to this set in place.
func (s *Set[W]) OrWith(another Set[W]) {
	for i := 0; i < len(s.words); i++ {
		s.words[i] |= another.words[i]
	}
}

// XorWith toggles the bits of this set in place that are set in another set.
func (s *Set[W]) XorWith(another Set[W]) {
	for i := 0; i < len(s.words); i++ {
		s.words[i] ^= another.words[i]
	}
}

// Intersects returns true if this set and another set have at least one bit
// in common. Padding bits beyond the width are ignored.
func (s Set[W]) Intersects(another Set[W]) bool {
	last := len(s.words) - 1
	for i := 0; i < last; i++ {
		if s.words[i]&another.words[i] != 0 {
			return true
		}
	}
	return s.words[last]&another.words[last]&lastWordMask[W]() != 0
}
