// Package field defines the scalar-field capability and the node algebra
// built on top of it: immutable expression-tree nodes that combine,
// modify, or warp the outputs of their children.
//
// What:
//
//   - Field is the single capability every node implements:
//     Evaluate(x, y, z) (float64, error).
//   - Constant is the leaf source; Func adapts an arbitrary function.
//   - Abs and Exp transform a child's output.
//   - Add, Subtract, Multiply, Min, Max combine two children.
//   - Blend interpolates between two children under a control field;
//     Clamped restricts a child into a field-valued range.
//   - Displace re-routes a query through three displacement fields
//     before sampling its source.
//   - Chain wraps any Field with fluent construction methods
//     (direct, *Value literal, and *Func deferred-factory flavors).
//
// Why:
//
//   - Terrain/texture synthesis: compose fractal sources into ridges,
//     plateaus, and warped domains without writing evaluation loops.
//   - Simulation inputs: any code that needs a cheap deterministic
//     scalar function of position.
//
// Guarantees:
//
//   - Nodes are immutable after construction; evaluation is referentially
//     transparent and side-effect free, so a shared tree may be sampled
//     concurrently.
//   - Children evaluate left-to-right in documented order; the first
//     child error aborts evaluation and is returned unchanged.
//   - NaN and ±Inf are ordinary values, never errors; Min/Max follow
//     math.Min/math.Max NaN propagation.
//
// Complexity: Evaluate is O(nodes in the tree); no allocation per query.
//
// Errors:
//
//   - ErrInvertedBounds: Clamped saw lower > upper at evaluation time.
//
// See the fractal package for coherent-noise sources to use as leaves.
package field
