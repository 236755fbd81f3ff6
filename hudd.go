// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"unsafe"
)

// hudd stores the nodes of an engine using the runtime hashmap for the
// uniqueness table. The node table is a slice indexed by node ids, and the
// unique table associates each triplet (level, low, high) to a single index
// in this slice. Nodes are never removed, so an id stays valid for the
// lifetime of the engine.
type hudd struct {
	nodes        []huddnode      // List of all the nodes. Constants are always kept at index 0 and 1
	unique       map[huddkey]int // Unicity table, used to associate each triplet to a single node
	produced     int             // Total number of new nodes ever produced
	uniqueAccess int             // accesses to the unique node table
	uniqueHit    int             // entries actually found in the the unique node table
	uniqueMiss   int             // entries not found in the the unique node table
}

func makehudd(nodesize int) hudd {
	b := hudd{
		nodes:  make([]huddnode, 2, nodesize),
		unique: make(map[huddkey]int, nodesize),
	}
	// we do not add the constants to the unique table.
	copy(b.nodes, constnodes[:])
	return b
}

func (b *hudd) nodehash(level int32, low, high int) (int, bool) {
	hn, ok := b.unique[huddkey{level, low, high}]
	return hn, ok
}

// setnode appends a new node and registers it in the unique table.
func (b *hudd) setnode(level int32, low int, high int) int {
	res := len(b.nodes)
	b.nodes = append(b.nodes, huddnode{level, low, high})
	b.unique[huddkey{level, low, high}] = res
	b.produced++
	return res
}

func (b *hudd) size() int {
	return len(b.nodes)
}

func (b *hudd) level(n int) int32 {
	return b.nodes[n].level
}

func (b *hudd) low(n int) int {
	return b.nodes[n].low
}

func (b *hudd) high(n int) int {
	return b.nodes[n].high
}

// stats returns information about the node tables
func (b *hudd) stats() string {
	res := fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	res += fmt.Sprintf("Size:       %s\n", humanSize(cap(b.nodes), unsafe.Sizeof(huddnode{})))
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
	return res
}

// humanSize returns a description of the memory used by size elements of
// unit bytes each.
func humanSize(size int, unit uintptr) string {
	b := size * int(unit)
	const k = 1024
	switch {
	case b < k:
		return fmt.Sprintf("%d B", b)
	case b < k*k:
		return fmt.Sprintf("%.1f KB", float64(b)/k)
	case b < k*k*k:
		return fmt.Sprintf("%.1f MB", float64(b)/(k*k))
	}
	return fmt.Sprintf("%.1f GB", float64(b)/(k*k*k))
}
