// Package coherent implements the deterministic gradient-coherent-noise
// kernel underlying the fractal sources: a pseudo-random gradient is
// hashed from each integer lattice corner and a seed, dotted with the
// query point's offset from that corner, and the eight surrounding
// corner contributions are interpolated.
//
// What:
//
//   - GradientCoherent3D: smooth noise in roughly [-1, 1], keyed by
//     point, seed, and Quality.
//   - Quality: Fast (linear), Standard (cubic s-curve), Best (quintic
//     s-curve) interpolation between lattice gradients.
//   - MakeInt32Range: folds a coordinate into the range representable
//     by the kernel's 32-bit lattice indexing.
//
// Guarantees:
//
//   - Deterministic: identical (x, y, z, seed, quality) inputs produce
//     bit-identical outputs across runs and platforms.
//   - Stateless: no tables are seeded at runtime; the lattice hash is a
//     pure function, so concurrent use needs no synchronization.
//
// Complexity: O(1) per sample (8 corner hashes + trilinear blend).
package coherent
