// Package calc holds the arithmetic helpers exported by the project library.
package calc

// Add returns the sum of left and right. Overflow wraps around.
func Add(left, right int) int {
	return left + right
}
