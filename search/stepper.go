package search

import (
	"fmt"
	"iter"
	"sort"
	"sync"

	"github.com/katalvlaran/mazewalk/grid"
)

// Stepper produces Records one expansion at a time.
//
// Next returns the next Record and true, or a zero Record and false once the
// terminal Record has been returned. Implementations are not safe for
// concurrent use.
type Stepper interface {
	Next() (Record, bool)
	Algorithm() Algorithm
}

// Factory builds a fresh Stepper over g.
type Factory func(g *grid.Grid) Stepper

var (
	mu        sync.RWMutex
	factories = map[Algorithm]Factory{}
)

// Register installs f for a. Registering twice panics.
func Register(a Algorithm, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[a]; dup {
		panic(fmt.Sprintf("search: %v registered twice", a))
	}
	factories[a] = f
}

// New builds a Stepper for a over g.
func New(a Algorithm, g *grid.Grid) (Stepper, error) {
	mu.RLock()
	f, ok := factories[a]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
	return f(g), nil
}

// Algorithms lists the registered algorithms in ascending order.
func Algorithms() []Algorithm {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Algorithm, 0, len(factories))
	for a := range factories {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// All adapts s to a range-over-func sequence.
func All(s Stepper) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for {
			r, ok := s.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Collect drains s and returns every Record in order.
func Collect(s Stepper) []Record {
	var out []Record
	for r := range All(s) {
		out = append(out, r)
	}
	return out
}
