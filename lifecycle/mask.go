// File: lifecycle/mask.go
// Author: coreactor contributors
// License: Apache-2.0
//
// ParseMask implements the core-mask format: ASCII hex, optionally
// 0x-prefixed, as a u64 bitmask. Grounded on
// original_source/lib/event/reactor.c's spdk_app_parse_core_mask,
// which rejects trailing garbage and overflow the same way.

package lifecycle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreactor/coreactor/api"
	"github.com/coreactor/coreactor/platform"
)

// ParseMask parses s and clears any bit whose platform core is not
// enabled, silently. p's enabled set is fixed hardware/environment
// truth (typically seeded from platform.AvailableCoreMask() at
// Platform construction) - independent of the mask being parsed here,
// so there is no circularity in consulting it mid-parse. This does not
// check the master-core bit; that check happens in Init, after
// masking.
func ParseMask(s string, p platform.Platform) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return 0, api.NewError(api.ErrCodeInvalidArgument, "core mask is empty")
	}
	mask, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, api.NewError(api.ErrCodeInvalidArgument,
			fmt.Sprintf("core mask %q is not valid hex or overflows 64 bits", s)).
			WithContext("input", s)
	}

	for c := uint32(0); c < platform.MaxCores; c++ {
		bit := uint64(1) << c
		if mask&bit != 0 && !p.IsCoreEnabled(c) {
			mask &^= bit
		}
	}
	return mask, nil
}

// coreCount returns the number of set bits in mask.
func coreCount(mask uint64) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}
