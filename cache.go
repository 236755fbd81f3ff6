// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// buildcache remembers the result of building a simplified formula with a
// given suffix of an ordering. Keys are the textual form of the formula,
// which is canonical for structurally equal trees, followed by the remaining
// variables. Since nodes are never deleted, entries stay valid across builds.
type buildcache struct {
	table     map[string]int
	cachesize int // 0 if unbounded
	cacheStat
}

// cacheStat stores status information about cache usage
type cacheStat struct {
	opHit   int // entries found in the build cache
	opMiss  int // entries not found in the build cache
	opReset int // number of times the cache was cleared because it was full
}

func makebuildcache(cachesize int) buildcache {
	return buildcache{
		table:     make(map[string]int),
		cachesize: cachesize,
	}
}

func cachekey(formula string, suffix string) string {
	return formula + "\x00" + suffix
}

func (bc *buildcache) match(key string) (int, bool) {
	res, ok := bc.table[key]
	if ok {
		bc.opHit++
	} else {
		bc.opMiss++
	}
	return res, ok
}

func (bc *buildcache) set(key string, res int) int {
	if bc.cachesize > 0 && len(bc.table) >= bc.cachesize {
		bc.cachereset()
		bc.opReset++
	}
	bc.table[key] = res
	return res
}

func (bc *buildcache) cachereset() {
	bc.table = make(map[string]int)
}

// Prints information about the cache performance.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Cache Hits:     %d\n", c.opHit)
	res += fmt.Sprintf("Cache Miss:     %d\n", c.opMiss)
	res += fmt.Sprintf("Cache Resets:   %d", c.opReset)
	return res
}
