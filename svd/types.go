// Package svd: internal classification state for the diagonalization loop.

package svd

// iterCase names the four transformations the diagonalization loop chooses
// between on every pass. The classification scans the superdiagonal e and
// the diagonal s for negligible entries (relative to tiny + eps·(|s[k]|+
// |s[k+1]|)) and picks exactly one:
//
//   - caseDeflate  — the trailing singular value region is negligible:
//     rotate the tail away with Givens rotations chasing from
//     the bottom, updating V only.
//   - caseSplit    — a diagonal entry itself is negligible: zero it with
//     Givens rotations chasing from the split point, updating
//     U only.
//   - caseQRStep   — nothing negligible: one implicit-shift QR bulge chase
//     through the band, updating both U and V.
//   - caseConverge — the trailing superdiagonal entry is negligible: the
//     value has converged; normalize its sign, promote it past
//     larger neighbors, shrink the active problem.
//
// Every transition strictly reduces either the active size p or the
// negligible-boundary index, which is what drives eventual termination.
type iterCase int

const (
	caseDeflate iterCase = iota + 1
	caseSplit
	caseQRStep
	caseConverge
)
