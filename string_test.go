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

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("bit set diagnostics", func() {

	DescribeTable("generating textual representations",
		func(words bits40, expected string) {
			Expect(FromWords(words).String()).To(Equal(expected))
		},
		Entry("empty set", bits40{0, 0}, ""),
		Entry("padding bits only", bits40{0, 0xffffff00}, ""),
		Entry("single bit #0", bits40{1, 0}, "0"),
		Entry("single bit #39", bits40{0, 0x80}, "39"),
		Entry("bits #1-3", bits40{0xe, 0}, "1-3"),
		Entry("range across words", bits40{1 << 31, 1}, "31-32"),
		Entry("full set", bits40{^uint32(0), 0xff}, "0-39"),
		Entry("full set with padding", bits40{^uint32(0), ^uint32(0)}, "0-39"),
		Entry("b/w", bits40{0xaa0, 0}, "5,7,9,11"),
		Entry("art", bits40{0x5a0, 0x08}, "5,7-8,10,35"),
		Entry("skips empty first word", bits40{0, 0x0c}, "34-35"),
	)

	It("formats using fmt", func() {
		Expect(fmt.Sprintf("%v", NewSingle[bits40](3).Or(NewSingle[bits40](5)))).
			To(Equal("3,5"))
	})

	It("handles whole-word widths", func() {
		s := FromWords(Bits64{0, ^uint32(0)})
		Expect(s.String()).To(Equal("32-63"))
		Expect(s.Count()).To(Equal(uint(32)))
	})

	DescribeTable("counting bits",
		func(words bits40, count int) {
			s := FromWords(words)
			Expect(s.Count()).To(Equal(uint(count)))
			Expect(s.IsEmpty()).To(Equal(count == 0))
		},
		Entry(nil, bits40{0, 0}, 0),
		Entry(nil, bits40{0, 0xffffff00}, 0),
		Entry(nil, bits40{0x5a0, 0x08}, 5),
		Entry(nil, bits40{^uint32(0), ^uint32(0)}, 40),
	)

})
