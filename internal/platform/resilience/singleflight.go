package resilience

import (
	"fmt"
	"sync"
)

// SingleFlight deduplicates concurrent calls for the same key. The zero value is ready to use.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg    sync.WaitGroup
	val   any
	err   error
	dups  int
	chans []chan<- Result
}

// Result is delivered on the channel returned by DoChan.
type Result struct {
	Val    any
	Err    error
	Shared bool
}

// Do runs fn once per key at a time; callers arriving while fn runs share its result.
// A panic inside fn is converted to an error for every waiter.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	shared := g.finish(key, c, fn)
	return c.val, c.err, shared
}

// DoChan is like Do but returns a channel that receives the result once fn
// finishes. fn keeps running when every receiver has stopped listening.
func (g *SingleFlight) DoChan(key string, fn func() (any, error)) <-chan Result {
	ch := make(chan Result, 1)

	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		c.chans = append(c.chans, ch)
		g.mu.Unlock()
		return ch
	}

	c := &call{chans: []chan<- Result{ch}}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	go g.finish(key, c, fn)
	return ch
}

// finish runs fn, releases key and notifies every DoChan receiver.
func (g *SingleFlight) finish(key string, c *call, fn func() (any, error)) bool {
	g.run(c, fn)

	g.mu.Lock()
	delete(g.calls, key)
	shared := c.dups > 0
	chans := c.chans
	g.mu.Unlock()

	for _, waiter := range chans {
		waiter <- Result{Val: c.val, Err: c.err, Shared: shared}
	}
	return shared
}

// InFlight reports how many distinct keys are currently executing.
func (g *SingleFlight) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *SingleFlight) run(c *call, fn func() (any, error)) {
	defer c.wg.Done()
	defer func() {
		if rec := recover(); rec != nil {
			c.val = nil
			c.err = fmt.Errorf("singleflight call panicked: %v", rec)
		}
	}()
	c.val, c.err = fn()
}
