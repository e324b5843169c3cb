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

// wordbits is the number of bits stored in each word of a Set.
const wordbits = 32

// Width is the type-level width of a [Set]: a named uint32 array long enough
// to hold the width's bits, which additionally reports the exact number of
// bits through its Bits method. The array length is the word count, so two
// sets of different widths never mix in the same operation.
//
// Bits must be in the range (32*(words-1), 32*words], otherwise the first
// bit-indexed operation on the set panics. Widths are limited to at most 64
// words, that is, 2048 bits.
//
// For a width of, say, 40 bits:
//
//	type NodeBits [2]uint32
//
//	func (NodeBits) Bits() uint { return 40 }
type Width interface {
	~[1]uint32 | ~[2]uint32 | ~[3]uint32 | ~[4]uint32 | ~[5]uint32 | ~[6]uint32 | ~[7]uint32 | ~[8]uint32 |
		~[9]uint32 | ~[10]uint32 | ~[11]uint32 | ~[12]uint32 | ~[13]uint32 | ~[14]uint32 | ~[15]uint32 | ~[16]uint32 |
		~[17]uint32 | ~[18]uint32 | ~[19]uint32 | ~[20]uint32 | ~[21]uint32 | ~[22]uint32 | ~[23]uint32 | ~[24]uint32 |
		~[25]uint32 | ~[26]uint32 | ~[27]uint32 | ~[28]uint32 | ~[29]uint32 | ~[30]uint32 | ~[31]uint32 | ~[32]uint32 |
		~[33]uint32 | ~[34]uint32 | ~[35]uint32 | ~[36]uint32 | ~[37]uint32 | ~[38]uint32 | ~[39]uint32 | ~[40]uint32 |
		~[41]uint32 | ~[42]uint32 | ~[43]uint32 | ~[44]uint32 | ~[45]uint32 | ~[46]uint32 | ~[47]uint32 | ~[48]uint32 |
		~[49]uint32 | ~[50]uint32 | ~[51]uint32 | ~[52]uint32 | ~[53]uint32 | ~[54]uint32 | ~[55]uint32 | ~[56]uint32 |
		~[57]uint32 | ~[58]uint32 | ~[59]uint32 | ~[60]uint32 | ~[61]uint32 | ~[62]uint32 | ~[63]uint32 | ~[64]uint32
	Bits() uint
}

// Predefined widths of whole words.
type (
	Bits32   [1]uint32
	Bits64   [2]uint32
	Bits128  [4]uint32
	Bits256  [8]uint32
	Bits512  [16]uint32
	Bits1024 [32]uint32
	Bits2048 [64]uint32
)

func (Bits32) Bits() uint   { return 32 }
func (Bits64) Bits() uint   { return 64 }
func (Bits128) Bits() uint  { return 128 }
func (Bits256) Bits() uint  { return 256 }
func (Bits512) Bits() uint  { return 512 }
func (Bits1024) Bits() uint { return 1024 }
func (Bits2048) Bits() uint { return 2048 }
