package main

import (
	"context"
	"fmt"
	"time"

	"github.com/peterbourgon/here"
)

type greeter struct {
	id     int
	tracer *here.Tracer
	opts   []here.Option
}

func (g *greeter) run(ctx context.Context, count int, interval time.Duration) error {
	for i := 1; count <= 0 || i <= count; i++ {
		if err := g.tracer.TS(g.opts...); err != nil {
			return fmt.Errorf("worker %d: %w", g.id, err)
		}
		if err := g.hello(i); err != nil {
			return fmt.Errorf("worker %d: %w", g.id, err)
		}

		contextSleep(ctx, interval)
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

func (g *greeter) hello(iteration int) error {
	name := fmt.Sprintf("worker %d", g.id)
	if err := g.tracer.Val(here.Ref("name", func() any { return name }), g.opts...); err != nil {
		return err
	}
	labeled := append(g.opts[:len(g.opts):len(g.opts)], here.Label("iteration"))
	return g.tracer.Val(iteration, labeled...)
}

func contextSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
