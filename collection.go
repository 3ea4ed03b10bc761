package yiv

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Less orders two image handles. A Less function supplied to
// Collection.Sort must implement a strict weak ordering; sorting with a
// comparator that does not is unspecified (but never crashes).
type Less func(a, b *Image) bool

// Collection is an ordered container of shared Image handles. The same
// Image may be referenced by any number of collections and external
// holders; the collection claims no exclusive ownership.
//
// Every structural operation acquires a single internal mutex for its
// duration, making the collection safe for concurrent use from multiple
// goroutines. The mutex is not reentrant.
type Collection struct {
	mu     sync.Mutex
	images []*Image
}

// NewCollection returns an empty collection ready for use.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends a handle at the end, preserving insertion order for
// subsequent positional access.
func (c *Collection) Add(img *Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = append(c.images, img)
}

// Remove deletes the element at index, shifting later elements left by
// one. An out-of-range index is a silent no-op. The collection drops its
// reference to the removed image, so its lifetime ends with its last
// remaining holder.
func (c *Collection) Remove(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.images) {
		return
	}
	copy(c.images[index:], c.images[index+1:])
	last := len(c.images) - 1
	c.images[last] = nil // release the handle; the tail slot stays in capacity
	c.images = c.images[:last]
}

// At returns the handle at index, or nil if index is out of range.
func (c *Collection) At(index int) *Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.images) {
		return nil
	}
	return c.images[index]
}

// Count returns the number of held handles.
func (c *Collection) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Shuffle reorders the collection into a uniformly random permutation.
// The random source is reseeded independently on every call.
func (c *Collection) Shuffle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(c.images), func(i, j int) {
		c.images[i], c.images[j] = c.images[j], c.images[i]
	})
}

// Sort reorders the collection according to less. Stability is not
// guaranteed.
func (c *Collection) Sort(less Less) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.Slice(c.images, func(i, j int) bool {
		return less(c.images[i], c.images[j])
	})
}

// Lock acquires the collection's internal mutex so a caller can bracket a
// longer read/modify sequence spanning multiple external calls.
//
// The mutex is the same one used by every structural operation and is not
// reentrant: calling Add, Remove, At, Count, Shuffle, or Sort while
// holding the manual lock deadlocks the calling goroutine. Pair every
// Lock with an Unlock.
func (c *Collection) Lock() {
	c.mu.Lock()
}

// Unlock releases the mutex acquired by Lock.
func (c *Collection) Unlock() {
	c.mu.Unlock()
}
