// Package frontier defines the shared types and sentinel errors for the
// open-list containers.
package frontier

import "errors"

// Sentinel errors for frontier construction.
var (
	// ErrBadPolicy is returned when a PriorityQueue ordering policy is
	// neither Min nor Max.
	ErrBadPolicy = errors.New("frontier: ordering policy must be Min or Max")

	// ErrNilKeyFunc is returned when a PriorityQueue is constructed without
	// a key function.
	ErrNilKeyFunc = errors.New("frontier: key function is nil")

	// ErrNilIdentity is returned when a container is constructed without an
	// identity function.
	ErrNilIdentity = errors.New("frontier: identity function is nil")
)

// Identity extracts the comparable membership key of an element. Contains,
// Get, and Remove compare extracted keys, never elements themselves, so two
// elements with equal keys are interchangeable for membership purposes.
type Identity[E any, K comparable] func(E) K

// Self is the Identity for plain comparable values: the element is its own
// membership key.
func Self[T comparable](v T) T { return v }

// KeyFunc maps an element to the numeric priority key used to order a
// PriorityQueue.
type KeyFunc[E any] func(E) float64

// Policy selects which end of the sorted order a PriorityQueue pops.
// The zero value is invalid; construction validates the policy.
type Policy uint8

const (
	// Min pops the element with the smallest priority key first.
	Min Policy = iota + 1
	// Max pops the element with the largest priority key first.
	Max
)
