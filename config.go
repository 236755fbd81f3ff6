// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "go.uber.org/zap"

// configs is used to store the values of different parameters of an Engine
type configs struct {
	nodesize    int         // initial capacity of the node table
	maxnodesize int         // Maximum total number of nodes (0 if no limit)
	maxvarnum   int         // Maximum length of an ordering (0 if no limit)
	memoize     bool        // whether Build uses the build cache
	cachesize   int         // maximum number of entries in the build cache (0 if no limit)
	logger      *zap.Logger // never nil
}

// Option is the type of configuration options passed to New.
type Option func(*configs)

func makeconfigs(options ...Option) *configs {
	c := &configs{
		nodesize: _DEFAULTNODESIZE,
		memoize:  true,
		logger:   zap.NewNop(),
	}
	for _, f := range options {
		f(c)
	}
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial size for the node table. The table grows during
// computation when needed.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes (constants included) in the node
// table. A build trying to raise the number of nodes above this limit fails
// with an error wrapping ErrNodeLimit. The default value (0) means that there
// is no limit.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxvarnum is a configuration option (function). Used as a parameter in New
// it sets a limit to the length of the orderings accepted by Build, which is
// also the maximal depth of recursion during a build. The default value (0)
// means that there is no limit.
func Maxvarnum(num int) Option {
	return func(c *configs) {
		c.maxvarnum = num
	}
}

// Memoize is a configuration option (function). With a value of true (the
// default), Build remembers the node computed for each pair of simplified
// formula and remaining ordering, so that equal sub-formulas reached through
// different paths are expanded only once. The result of Build does not depend
// on this option.
func Memoize(on bool) Option {
	return func(c *configs) {
		c.memoize = on
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the maximal number of entries in the build cache; the cache is
// cleared when it is full. The default value (0) means that the cache size is
// not bounded.
func Cachesize(size int) Option {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Logger is a configuration option (function) that sets the logger used by
// the engine. By default, nothing is logged.
func Logger(l *zap.Logger) Option {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
