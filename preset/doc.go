// Package preset decodes declarative YAML descriptions into field trees,
// so noise pipelines can live in configuration instead of code.
//
// What:
//
//   - Decode turns a YAML document into a field.Field; every node kind
//     of the algebra is supported (constant, billow, perlin, ridged,
//     simplex, abs, exp, add, subtract, multiply, min, max, blend,
//     clamp, displace).
//   - Omitted source parameters fall back to the fractal package
//     defaults; quality is spelled "fast", "standard", or "best".
//
// Example document:
//
//	kind: max
//	first:
//	  kind: billow
//	  seed: 42
//	  octaves: 4
//	  quality: best
//	second:
//	  kind: constant
//	  value: -0.25
//
// Decoding is construction-time only: the resulting tree evaluates with
// exactly the semantics of hand-built nodes.
//
// Errors:
//
//   - ErrUnknownKind: a node names a kind the algebra does not have.
//   - ErrArity: a node is missing a required child.
//   - ErrUnknownQuality: a fractal node names an unknown quality level.
//   - fractal.ErrInvalidParameter: forwarded from source construction.
package preset
