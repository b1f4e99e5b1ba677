package hamt

import "math/bits"

// allocSizesByLevel is indexed [level][generation] and holds a pre-tuned
// guess at how many child slots a freshly grown Branch should reserve.
// Shallow branches (low level) fill up fast and are grown generously;
// branches below level 4 usually hold only a single child, so they are
// given exactly that until required forces more.
//
// generation = ceil(log2(expectedEntries)), clamped to 22.
var allocSizesByLevel = [5][23]uint32{
	// 1  2  4  8  16  32  64  128 256  512 1024 2048 4096 8192 16384 32768 65536 2^17 2^18 2^19 2^20 2^21 2^22
	{2, 3, 5, 8, 13, 21, 29, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32},
	{1, 1, 1, 1, 1, 2, 3, 5, 8, 13, 21, 29, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 3, 5, 8, 13, 21, 29, 32, 32, 32, 32, 32, 32},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 3, 5, 8, 13, 21, 29, 32},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// allocSizesByRequired is the fallback table used when required exceeds
// the level/generation guess: the smallest Fibonacci-like bucket >= required.
var allocSizesByRequired = [33]uint32{
	// 0  1  2  3  4  5  6  7  8   9  10  11  12  13  14  15  16  17  18  19  20  21  22  23  24  25  26  27  28  29  30  31  32
	1, 1, 2, 3, 5, 5, 8, 8, 8, 13, 13, 13, 13, 13, 21, 21, 21, 21, 21, 21, 21, 21, 29, 29, 29, 29, 29, 29, 29, 29, 32, 32, 32,
}

// allocationSize implements the Capacity Oracle: given how many child
// slots are required right now, the expected eventual size of the whole
// Hash, and the level of the Branch being grown, it returns how many
// slots to actually reserve -- always in [required, 32].
func allocationSize(required int, expectedSize int, level int) int {
	if required < 1 {
		required = 1
	}
	if required > 32 {
		required = 32
	}
	if expectedSize < 1 {
		expectedSize = 1
	}

	var generation uint
	if level > 4 {
		level = 4
		generation = 0
	} else {
		generation = uint(bits.Len64(uint64(expectedSize - 1)))
		if generation > 22 {
			generation = 22
		}
	}

	guess := int(allocSizesByLevel[level][generation])
	if required > guess {
		return int(allocSizesByRequired[required])
	}
	return guess
}
