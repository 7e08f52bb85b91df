// Package jpcommon builds the Utterance tree from a finalized NJD node
// vector and emits the full-context Label string per mora (spec §4.8).
package jpcommon

import (
	"fmt"
	"strconv"
)

// Limit is a numeric-field clamp family (spec §4.8 "Range clamping",
// §9 "Label numeric ranges"), grounded on jpreprocess-core/src/jpcommon/
// feature/limit.rs.
type Limit int

const (
	S  Limit = iota // ±19
	M               // ±49
	L               // ±99
	LL              // ±199
)

func (lim Limit) max() int {
	switch lim {
	case S:
		return 19
	case M:
		return 49
	case L:
		return 99
	case LL:
		return 199
	}
	return 0
}

// ClampUnsigned formats an unsigned field, clamping to [1, max] and
// emitting "xx" when the value is not known (spec §4.8, §8: the
// unsigned ranges are 1-19/1-49/1-99/1-199, not 0-based — a heiban
// word's accent nucleus of 0 still renders as "1", never "0").
func (lim Limit) ClampUnsigned(v int, known bool) string {
	if !known {
		return "xx"
	}
	max := lim.max()
	if v < 1 {
		v = 1
	}
	if v > max {
		v = max
	}
	return strconv.Itoa(v)
}

// ClampSigned formats a signed field, clamping to [-max, max].
func (lim Limit) ClampSigned(v int, known bool) string {
	if !known {
		return "xx"
	}
	max := lim.max()
	if v < -max {
		v = -max
	}
	if v > max {
		v = max
	}
	return strconv.Itoa(v)
}

// FormatID zero-pads a 2-digit id, or emits "xx" when unknown (spec
// §4.8 "IDs have zero-padded 2-digit width").
func FormatID(id int, ok bool) string {
	if !ok {
		return "xx"
	}
	return fmt.Sprintf("%02d", id)
}
