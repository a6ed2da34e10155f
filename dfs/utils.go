// Package dfs provides common helper functions used by cycle detection:
// int-slice operations and Booth's minimal-rotation algorithm.
package dfs

import (
	"strconv"
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two equal-length int slices a and b.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(n).
func Compare(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n + total length of elements).
func JoinSig(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically minimal rotation of s.
// It returns a new slice of length len(s) representing the minimal rotation in O(n) time.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
// Time Complexity: O(n).
func MinimalRotation(s []int) []int {
	doubled := append(append([]int(nil), s...), s...) // duplicate sequence
	n := len(s)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]int, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}

	return res
}
