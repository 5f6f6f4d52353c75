package generator

import (
	"context"
	"runtime"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/passgen/errors"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/observability"
)

// GenerateN returns count independent passwords of the given length,
// generated by up to GOMAXPROCS workers. The first failure cancels the
// remaining work and is returned; no partial result is returned.
func (g *Generator) GenerateN(ctx context.Context, count, length int, opts ...GenerateOption) ([]string, error) {
	if count < 0 {
		return nil, errors.InvalidArgument("count", count, "must not be negative")
	}
	if length < g.minLength {
		return nil, errors.LengthTooShort(length, g.minLength)
	}
	if count == 0 {
		return []string{}, nil
	}

	parent, span := observability.StartSpan(ctx, observability.SpanGenerateN)
	span.SetAttributes(
		attribute.Int(observability.AttrCount, count),
		attribute.Int(observability.AttrLength, length),
	)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		out      = make([]string, count)
		jobs     = make(chan int)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	workers := min(runtime.GOMAXPROCS(0), count)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pw, err := g.Generate(ctx, length, opts...)
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				out[i] = pw
			}
		}()
	}

	fed := 0
feed:
	for ; fed < count; fed++ {
		select {
		case jobs <- fed:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// The feed loop can stop on parent cancellation before any worker fails.
	if firstErr == nil && fed < count {
		firstErr = parent.Err()
	}
	observability.EndSpan(span, firstErr)
	if firstErr != nil {
		g.log.WithContext(parent).WithError(firstErr).Warn("batch generation failed", logger.Fields(logger.FieldCount, count))
		return nil, firstErr
	}
	return out, nil
}
