// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// varset interns variable names. The index of a variable is used as its
// "level" in the node table; it never changes once assigned, even if the
// variable appears at different positions in the orderings of successive
// builds.
type varset struct {
	varnames []string         // index -> name
	varindex map[string]int32 // name -> index
}

func makevarset() varset {
	return varset{varindex: make(map[string]int32)}
}

// setvar returns the index of variable name, allocating a new one if needed.
func (v *varset) setvar(name string) (int32, error) {
	if k, ok := v.varindex[name]; ok {
		return k, nil
	}
	if int32(len(v.varnames)) >= _MAXVAR {
		return -1, seterror(ErrVarLimit, "cannot register variable %s", name)
	}
	k := int32(len(v.varnames))
	v.varnames = append(v.varnames, name)
	v.varindex[name] = k
	return k, nil
}

// setvars validates an ordering and returns the indices of its variables. We
// reject orderings with empty names or with duplicates.
func (v *varset) setvars(ordering []string) ([]int32, error) {
	seen := make(map[string]bool, len(ordering))
	levels := make([]int32, len(ordering))
	for k, name := range ordering {
		if name == "" {
			return nil, orderingerror("empty variable name at position %d in ordering", k)
		}
		if seen[name] {
			return nil, orderingerror("variable %s occurs more than once in ordering", name)
		}
		seen[name] = true
		level, err := v.setvar(name)
		if err != nil {
			return nil, err
		}
		levels[k] = level
	}
	return levels, nil
}

// Varnum returns the number of variables registered in the engine.
func (e *Engine) Varnum() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.varnames)
}
