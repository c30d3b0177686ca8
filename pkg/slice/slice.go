// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic
Map and Filter helpers.

Both always return a non-nil slice so results encode as a JSON array.
*/
package slice

// Map applies transform to every element of input.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for index, value := range input {
		result[index] = transform(value)
	}
	return result
}

// Filter keeps the elements for which predicate holds, preserving order.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, value := range input {
		if predicate(value) {
			result = append(result, value)
		}
	}
	return result
}
