package chain

import (
	"context"
	"sync"

	"NFTMarketBackend/src/errcode"
)

type engineCtxKey struct{}

func withEngine(ctx context.Context) context.Context {
	return context.WithValue(ctx, engineCtxKey{}, true)
}

func inEngine(ctx context.Context) bool {
	entered, _ := ctx.Value(engineCtxKey{}).(bool)
	return entered
}

// guard serializes state-mutating entry points and rejects nested re-entry.
// Independent callers queue on the mutex; a nested call made from inside a
// running operation carries the engine-marked context and is rejected with
// ErrReentrantCall instead of deadlocking.
type guard struct {
	mu sync.Mutex
}

// enter returns the marked context and a release func to be deferred.
func (g *guard) enter(ctx context.Context) (context.Context, func(), error) {
	if inEngine(ctx) {
		return nil, nil, errcode.ErrReentrantCall
	}
	g.mu.Lock()
	return withEngine(ctx), g.mu.Unlock, nil
}
