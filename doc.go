// Package finter interpolates user-entered 2-D samples and explains the result.
//
// What is finter?
//
//	A thread-safe toolkit that brings together:
//		• Parsing of "x0,y0; x1,y1; ..." sample text (strict or lenient)
//		• Newton divided-difference tables, every order retained
//		• Lagrange, progressive Newton and regressive Newton evaluation
//		• Step-by-step formula text with consistent sign normalisation
//		• A bounded LRU cache for rendered formula assets
//		• A catalog of named datasets addressed by stable IDs
//
// Packages:
//
//	series/       Point, sample parser, equidistance and range helpers
//	divdiff/      immutable divided-difference Table
//	interp/       Variant, evaluators, curve sampling, power-basis coefficients
//	formula/      Formatter producing P(x) and derivation lines
//	dataset/      one named dataset with its derived state under a lock
//	collection/   ordered catalog of datasets
//	rendercache/  LRU of rendered assets with prometheus counters
//	config/       YAML host configuration
//	cmd/finter    command line host
//
// Quick start:
//
//	c := collection.New()
//	id, _ := c.AddText("", "0,1; 1,3; 2,7")
//	y, _ := c.Evaluate(id, interp.NewtonBackward, 1.5) // 4.75
//	lines, _ := c.Formula(id, interp.Lagrange, true)
//
// See the examples/ directory for a runnable scenario.
package finter
