// Package stylesheet turns a theme into CSS: one utility class per enabled
// strategy and permitted value, named
//
//	.<prefix>grid-cols-<strategy>-<key>
//
// with the nested "> *" selectors of every distribute.Rule flattened under it.
//
// Values that distribute rejects (non-integers, N < 1, overflow) produce no
// class; they are logged at debug level through the context logger.
//
// Strategies are computed concurrently (golang.org/x/sync/errgroup); the
// output order is theme strategy order, then value order, independent of
// scheduling.
package stylesheet
