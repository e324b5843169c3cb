/*
Package fixbits supports fixed-width bit sets: value types holding a fixed
number of bits, packed into uint32 words.

The width of a [Set] is fixed at compile time through its type parameter, a
named uint32 array type implementing [Width]. The array length is the number
of words and the Bits method reports the exact number of bits, such as:

	type NodeBits [2]uint32

	func (NodeBits) Bits() uint { return 40 }

	var s fixbits.Set[NodeBits]
	s.Set(35)

The zero value of a Set is the empty set. Sets support the usual bitwise set
algebra, both as operations returning new sets ([Set.And], [Set.Or],
[Set.Xor], [Set.AndNot], [Set.Not]) as well as in-place operations
([Set.AndWith], [Set.OrWith], [Set.XorWith]). Additionally, sets are totally
ordered by their words, lowest word first, see [Set.Compare].
*/
package fixbits
