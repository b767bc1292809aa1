package util

import "sync/atomic"

// SafeCounter is a monotonically advancing counter, safe to use concurrently.
// Query hooks use it as a request generation: every new request takes Next()
// and a response is only applied while its generation is still Value().
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter creates a new SafeCounter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Next advances the counter and returns the new value.
func (sc *SafeCounter) Next() int64 {
	return sc.value.Add(1)
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int64 {
	return sc.value.Load()
}

// IsCurrent reports whether gen is still the latest generation handed out.
func (sc *SafeCounter) IsCurrent(gen int64) bool {
	return sc.value.Load() == gen
}

// SafeFlag is a boolean safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeFlag creates a new SafeFlag with an initial value.
func NewSafeFlag(initialValue bool) *SafeFlag {
	sf := &SafeFlag{}
	sf.value.Store(initialValue)
	return sf
}

// Set sets the value of the flag and returns the new value.
func (sf *SafeFlag) Set(newValue bool) bool {
	sf.value.Store(newValue)
	return newValue
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}

// Clear sets the flag to false and reports whether it was true before.
// Only one caller observes true, which makes it usable as a close-once guard.
func (sf *SafeFlag) Clear() bool {
	return sf.value.CompareAndSwap(true, false)
}
