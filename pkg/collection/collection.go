// Package collection provides generic slice helpers in the style of
// Laravel collections.
package collection

import "sort"

// Map transforms each element of s with fn.
func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value starting from init.
func Reduce[T, U any](s []T, init U, fn func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// GroupBy buckets elements of s by the key fn returns.
func GroupBy[T any, K comparable](s []T, fn func(T) K) map[K][]T {
	out := map[K][]T{}
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// SortBy returns a copy of s sorted ascending by the key fn returns.
func SortBy[T any, K int | int64 | float64 | string](s []T, fn func(T) K) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) < fn(out[j]) })
	return out
}

// SortByDesc returns a copy of s sorted descending by the key fn returns.
func SortByDesc[T any, K int | int64 | float64 | string](s []T, fn func(T) K) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) > fn(out[j]) })
	return out
}

// Take returns the first n elements of s (all of s when n exceeds its length).
func Take[T any](s []T, n int) []T {
	if n > len(s) {
		n = len(s)
	}
	out := make([]T, n)
	copy(out, s[:n])
	return out
}

// Contains reports whether v is present in s.
func Contains[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
