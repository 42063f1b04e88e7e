//go:build !deadlock
// +build !deadlock

// Package sync provides the mutexes used across nanorpc. Building with the
// deadlock tag swaps them for lock-order checking ones.
package sync

import "sync"

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}
