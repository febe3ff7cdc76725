package port

import "os"

const (
	// baseRangeSize is the size of the uid-derived port range. The uid
	// is folded into [0, baseRangeSize) before the offset is applied,
	// keeping every derived base inside the 16-bit port space with the
	// full scan window to spare.
	baseRangeSize = 63300

	// baseRangeOffset shifts derived ports above the well-known range.
	baseRangeOffset = 2048

	// DefaultScanWidth is the number of consecutive ports probed
	// starting from the base before giving up.
	DefaultScanWidth = 100
)

// BasePortFor derives the deterministic starting port for a given
// numeric user id: (uid mod 63300) + 2048. The result is always in
// [2048, 65347], so even the last port of the default scan window
// (base+99 = 65446) stays inside the 16-bit port space.
func BasePortFor(uid int) int {
	return uid%baseRangeSize + baseRangeOffset
}

// BasePort derives the starting port for the invoking user.
func BasePort() int {
	return BasePortFor(os.Getuid())
}
