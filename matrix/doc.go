// Package matrix provides the fixed-size linear algebra used by frame
// transforms: 3-vectors, 3×3 matrices and rotation constructors.
//
// What:
//
//   - Vec3 and Mat3 are value types ([3]float64 and [3][3]float64). Every
//     operation returns a new value and never mutates its receiver, so they
//     can be shared freely between goroutines.
//   - Rotation helpers build proper orthonormal matrices: RotationX/Y/Z,
//     AxisAngle and the inverse mapping RotationVector.
//   - AllClose compares with the combined tolerance |a−b| ≤ atol + rtol·|b|.
//
// Conventions:
//
//	A rotation matrix R attached to a transform F0 → F1 maps coordinates
//	expressed in F0 into coordinates expressed in F1:  x₁ = R·x₀.
//	RotationZ(θ) turns vectors counter-clockwise about +Z by θ, so that
//	RotationZ(π/2)·(1,0,0) = (0,1,0).
//
// Errors:
//
//   - ErrSingular      – Inverse of a matrix with |det| below SingularEps.
//   - ErrNaNInf        – non-finite input where finite values are required.
//   - ErrNotOrthonormal – a matrix expected to be a rotation is not one.
package matrix
