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

// Equal returns true if this set and another set consist of the same words,
// including the padding bits beyond the width.
func (s Set[W]) Equal(another Set[W]) bool {
	for i := 0; i < len(s.words); i++ {
		if s.words[i] != another.words[i] {
			return false
		}
	}
	return true
}

// Compare returns -1 if this set orders before another set, +1 if it orders
// after, and 0 if both sets are equal. Sets order lexicographically by their
// words, starting with word 0 (that is, bits 0-31): the first differing word
// decides. This is not the order of the sets' numerical values when
// interpreting them as multi-word integers.
func (s Set[W]) Compare(another Set[W]) int {
	for i := 0; i < len(s.words); i++ {
		switch w, aw := s.words[i], another.words[i]; {
		case w < aw:
			return -1
		case w > aw:
			return 1
		}
	}
	return 0
}

// Less reports whether this set orders strictly before another set; see
// [Set.Compare] for the ordering.
func (s Set[W]) Less(another Set[W]) bool {
	return s.Compare(another) < 0
}
