// File: lifecycle/mask_test.go
// Author: coreactor contributors
// License: Apache-2.0

package lifecycle

import (
	"testing"

	"github.com/coreactor/coreactor/platform"
)

func TestParseMask(t *testing.T) {
	available := platform.NewFake(0x7, 1) // cores 0,1,2 enabled, master 1

	cases := []struct {
		name    string
		input   string
		wantOK  bool
		wantVal uint64
	}{
		{"plain hex", "6", true, 0x6},
		{"0x prefixed", "0x6", true, 0x6},
		{"uppercase prefix", "0X6", true, 0x6},
		{"clears unavailable bits", "0xff", true, 0x7},
		{"trailing garbage", "6g", false, 0},
		{"empty", "", false, 0},
		{"overflow", "1ffffffffffffffff", false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseMask(c.input, available)
			if c.wantOK && err != nil {
				t.Fatalf("ParseMask(%q) returned error: %v", c.input, err)
			}
			if !c.wantOK && err == nil {
				t.Fatalf("ParseMask(%q) = %#x, want an error", c.input, got)
			}
			if c.wantOK && got != c.wantVal {
				t.Fatalf("ParseMask(%q) = %#x, want %#x", c.input, got, c.wantVal)
			}
		})
	}
}

func TestCoreCount(t *testing.T) {
	cases := map[uint64]int{0: 0, 1: 1, 0x7: 3, 0xff: 8}
	for mask, want := range cases {
		if got := coreCount(mask); got != want {
			t.Errorf("coreCount(%#x) = %d, want %d", mask, got, want)
		}
	}
}
