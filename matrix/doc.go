// Package matrix provides a square upper-triangular matrix built from vectors.
//
// The matrix owns one vector.Vector per row. Row i holds the n-i entries
// (i,i)..(i,n-1) and has start index i, so the entry in column j lives at
// zero-based position j-i of the row. Nothing below the diagonal is stored:
// an n×n matrix keeps n(n+1)/2 values.
//
// Construction validates the order against a configured maximum
// (MaxMatrixSize by default). Clone and Assign deep-copy every row, and
// Add/Sub work row by row through the vector operators.
//
// ToTriDense and FromTriDense convert to and from gonum's mat.TriDense.
package matrix
