// Package noisefield is a composable scalar-field engine for procedural
// noise synthesis: build an expression tree out of small immutable nodes,
// then sample it at any (x, y, z) to get a scalar.
//
// 🚀 What is noisefield?
//
//	A small, pure-Go algebra of scalar fields over 3D space:
//		• Sources: constant values and fractal coherent noise
//		  (Billow, Perlin, RidgedMulti, Simplex)
//		• Modifiers: absolute value, power remapping
//		• Combinators: add/subtract/multiply/min/max, interpolated
//		  blend, clamp-to-range, coordinate displacement
//		• A fluent chaining surface with literal and deferred-factory
//		  call flavors
//		• Declarative YAML presets decoded straight into field trees
//
// ✨ Why choose noisefield?
//
//   - Immutable trees – every node is fixed at construction; sampling a
//     shared tree from many goroutines is safe without locks
//   - Explicit errors – invalid configuration is a recoverable error,
//     never a panic; child failures propagate unchanged
//   - Deterministic – identical parameters (seed included) always yield
//     bit-identical samples
//   - Embeddable – no rendering, no IO, no goroutines; just a
//     per-point evaluation function for your terrain, texture, or
//     simulation code to call
//
// Under the hood, everything is organized into four subpackages:
//
//	field/    — the Field capability, node algebra & chaining surface
//	coherent/ — the gradient-coherent-noise kernel & quality levels
//	fractal/  — octave-summing sources built on the kernel
//	preset/   — YAML descriptions of field trees
//
// Quick taste:
//
//	f := field.FromValue(25).
//		MaxFunc(func() field.Field {
//			return field.FromValue(15).AddValue(3).MultiplyValue(3).SubtractValue(20)
//		}).
//		SubtractValue(5)
//	v, _ := f.Evaluate(0, 0, 0) // 29 everywhere
//
//	go get github.com/velmaran/noisefield
package noisefield
