package field

// Matrix operations over finite fields

// VecMatMul returns the vector-matrix product v*M, i.e. the linear
// combination sum_j v[j]*M[j] of the rows of M.
func VecMatMul(v []Element, m [][]Element, f Field) []Element {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	result := make([]Element, cols)
	for i := 0; i < cols; i++ {
		result[i] = f.Zero()
	}
	for j, c := range v {
		for i := 0; i < cols; i++ {
			result[i] = result[i].Add(c.Mul(m[j][i]))
		}
	}
	return result
}

// IsLinearlyIndependent checks if the list of field element vectors is linearly independent.
func IsLinearlyIndependent(vectors [][]Element, f Field) bool {
	n := len(vectors) // number of vectors
	if n == 0 {
		return true // empty set is vacuously independent
	}
	m := len(vectors[0]) // dimension of each vector

	// Early exit: if more vectors than dimensions, they must be dependent
	if n > m {
		return false
	}

	// Make a deep copy of the matrix
	A := make([][]Element, n)
	for i := range vectors {
		A[i] = make([]Element, m)
		for j := range vectors[i] {
			A[i][j] = vectors[i][j].Clone()
		}
	}

	// Forward elimination is enough to compute the rank
	rank := 0
	for col := 0; col < m && rank < n; col++ {
		// Find pivot
		pivot := -1
		for i := rank; i < n; i++ {
			if !A[i][col].IsZero() {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue // no pivot in this column
		}

		// Swap to current rank position
		if pivot != rank {
			A[rank], A[pivot] = A[pivot], A[rank]
		}

		// Eliminate below only
		for i := rank + 1; i < n; i++ {
			if A[i][col].IsZero() {
				continue
			}
			// Use A[i][col] / A[rank][col] as elimination factor
			factor := A[i][col].Mul(A[rank][col].Inv())
			for j := col; j < m; j++ {
				tmp := factor.Mul(A[rank][j])
				A[i][j] = A[i][j].Sub(tmp)
			}
		}
		rank++
	}

	// Vectors are independent if rank equals number of vectors
	return rank == n
}
