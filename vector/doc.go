// Package vector provides a generic, bounds-checked, resizable numeric vector.
//
// What & Why:
//
//	Vector[T] owns a contiguous slice of T values and refuses every access that
//	falls outside of it, returning sentinel errors instead of panicking. Copies
//	are always deep (Clone, Assign), so two vectors never share storage.
//	An optional start index shifts the logical index range; it is used by the
//	matrix package, where row i of an upper-triangular matrix starts at column i.
//
// Indexing conventions:
//
//	Get/Set address the stored elements directly, zero-based: 0..Len()-1.
//	At/SetAt are offset-relative: valid positions are StartIndex()..StartIndex()+Len()-1.
//	Equality ignores the start index.
//
// Complexity:
//
//	New, Clone, Assign, Equal and all arithmetic run in O(n).
//	Get, Set, At, SetAt and the accessors run in O(1).
package vector
