// Package workgroup provides a structured-concurrency supervisor for Go.
// A Group spawns tasks sharing one cancellable context, cancels that context
// when the first task fails, and reports exactly one error from Wait after
// every task has returned.
package workgroup
