// Package matrix offers a small complex-valued dense matrix used by the
// T-matrix code.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix backed by gonum's mat.CDense, with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Kernels (Mul, MulConjTrans, MatVec, ConjTransVec, Transpose,
//     ConjTranspose, Add, Sub, Scale, ScaleRows) routed through gonum's
//     cblas128 and cmplxs packages.
//   - Column-major flattening helpers (ColumnMajor, FromColumnMajor) shared by
//     the persisted T-matrix formats.
//
// All kernels allocate a fresh result and never mutate their operands.
// Errors are package sentinels; branch on them with errors.Is.
package matrix
