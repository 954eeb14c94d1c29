// Package mathx provides the numerically-stable float32 scalar primitives
// the svd engine is built on.
//
// The decomposition never forms a²+b² directly: column and row norms are
// accumulated through Hypot, which stays finite where the naive square-sum
// would overflow (|a| ~ 1e30) or flush to zero (|a| ~ 1e-30). Pow exists so
// the engine can derive its negligibility constants (2⁻⁵², 2⁻⁹⁶⁶) exactly
// the way the reference algorithm does, including the float32 underflow of
// the latter.
//
// The remaining helpers (Abs, Sqrt) are thin float32 wrappers that keep the
// hot kernel loops free of float64 conversion noise.
package mathx
