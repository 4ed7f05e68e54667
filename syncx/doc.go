// Package syncx provides thin companion primitives to package workgroup:
// a counting semaphore, a semaphore-backed mutex, an execute-once guard, and
// a wait group whose completion can be selected on.
package syncx
