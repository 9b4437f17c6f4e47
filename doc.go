// Package powersvd computes the dominant singular value and its singular
// vectors of a dense real matrix by power iteration.
//
// The module is organized in two packages:
//
//	matrix/  Dense storage, the Operator interface (A·x, Aᵀ·y), vector
//	         primitives (Norm, Normalize, Dot) and validators
//	svd/     Dominant and DominantBatch, options, statuses, metrics
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{
//		{3, 1, 1},
//		{1, 3, 1},
//	})
//	res, _ := svd.Dominant(context.Background(), A)
//	fmt.Println(res.Status, res.Sigma) // converged 4.242640687...
//
// Pure Go, no cgo. Runs are reproducible for a fixed seed.
//
//	go get github.com/katalvlaran/powersvd
package powersvd
