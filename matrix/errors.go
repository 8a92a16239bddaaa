// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: " so it can be grepped in logs.
// Callers match with errors.Is; wrapping at the outer boundary is fine.
var (
	// ErrSingular is returned when inverting a matrix whose determinant is
	// zero within SingularEps.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotOrthonormal signals that a matrix expected to be a proper rotation
	// failed the orthonormality check.
	ErrNotOrthonormal = errors.New("matrix: matrix is not orthonormal")
)

// SingularEps is the |det| threshold under which Inverse reports ErrSingular.
const SingularEps = 1e-300

// OrthonormalTol is the absolute tolerance used by IsOrthonormal.
const OrthonormalTol = 1e-9
