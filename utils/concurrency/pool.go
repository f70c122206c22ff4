// Package concurrency implements a simple channel based pool of ressources for concurrent operations.
package concurrency

import (
	"fmt"
	"sync"
)

// Pool is a struct storing a channel of some given ressource (e.g. a [perm.Evaluator])
// meant to be used concurrently and a channel for errors.
// A ressource is held by at most one [Task] at a time.
type Pool[T any] struct {
	wg         sync.WaitGroup
	ressources chan T
	errors     chan error
}

// NewPool instantiates a new [Pool] over the given ressources.
// The number of ressources bounds the number of [Task] running at the same time.
// This method panics if no ressource is given.
func NewPool[T any](ressources []T) *Pool[T] {

	if len(ressources) == 0 {
		panic(fmt.Errorf("cannot NewPool: no ressource given"))
	}

	r := make(chan T, len(ressources))
	for i := range ressources {
		r <- ressources[i]
	}

	return &Pool[T]{
		ressources: r,
		errors:     make(chan error, 1),
	}
}

// Task is an abstract templates for a function taking as input
// a ressource of any kind that can be used concurrently.
type Task[T any] func(ressource T) (err error)

// Go runs a [Task] concurrently once a ressource is available.
// If a previous [Task] already failed, the [Task] is skipped.
// Only the first error returned by a [Task] is kept.
func (p *Pool[T]) Go(f Task[T]) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ressource := <-p.ressources
		defer func() { p.ressources <- ressource }()

		if len(p.errors) != 0 {
			return
		}

		if err := f(ressource); err != nil {
			select {
			case p.errors <- err:
			default:
			}
		}
	}()
}

// Wait waits until all concurrent [Task] have returned and returns
// the first encountered error, if any.
func (p *Pool[T]) Wait() (err error) {
	p.wg.Wait()
	select {
	case err = <-p.errors:
	default:
	}
	return
}
