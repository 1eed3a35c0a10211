// File: platform/numa_linux.go
//go:build linux
// +build linux

// Author: coreactor contributors
// License: Apache-2.0
//
// Pure-Go NUMA topology via sysfs, matching the platformNUMANodes
// contract of internal/concurrency/affinity_linux.go but without the
// libnuma/cgo dependency. No importable library does sysfs NUMA
// parsing, so this stays on the standard library (os, path globbing);
// recorded as such in DESIGN.md.

package platform

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const sysfsNodePath = "/sys/devices/system/node"

var (
	numaOnce    sync.Once
	numaNodeIDs []int
	numaOfCPU   map[int]int
)

func loadNUMATopology() {
	numaOnce.Do(func() {
		numaOfCPU = make(map[int]int)
		entries, err := os.ReadDir(sysfsNodePath)
		if err != nil {
			numaNodeIDs = []int{0}
			return
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasPrefix(name, "node") {
				continue
			}
			id, err := strconv.Atoi(strings.TrimPrefix(name, "node"))
			if err != nil {
				continue
			}
			numaNodeIDs = append(numaNodeIDs, id)

			cpuFiles, _ := filepath.Glob(filepath.Join(sysfsNodePath, name, "cpu[0-9]*"))
			for _, cf := range cpuFiles {
				base := filepath.Base(cf)
				cpuID, err := strconv.Atoi(strings.TrimPrefix(base, "cpu"))
				if err != nil {
					continue
				}
				numaOfCPU[cpuID] = id
			}
		}
		if len(numaNodeIDs) == 0 {
			numaNodeIDs = []int{0}
		}
		sort.Ints(numaNodeIDs)
	})
}

func platformNUMANodes() int {
	loadNUMATopology()
	return len(numaNodeIDs)
}

func platformNUMANodeOf(core uint32) int {
	loadNUMATopology()
	if node, ok := numaOfCPU[int(core)]; ok {
		return node
	}
	return -1
}
