package generator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/passgen/alphabet"
	"github.com/kbukum/passgen/errors"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/observability"
)

// Generate returns a password of length characters accepted by every policy.
//
// It fails with LENGTH_TOO_SHORT, before drawing anything, when length is
// below MinimumLength, and with GENERATION_EXHAUSTED when no candidate is
// accepted within the retry bound. Cancellation of ctx is observed between
// attempts.
func (g *Generator) Generate(ctx context.Context, length int, opts ...GenerateOption) (string, error) {
	start := time.Now()
	log := g.log.WithContext(ctx)

	if length < g.minLength {
		err := errors.LengthTooShort(length, g.minLength)
		g.metrics.RecordGenerate(ctx, observability.StatusTooShort, 0, time.Since(start))
		log.Debug("generate rejected", logger.ErrorFields("generate", err))
		return "", err
	}

	o := defaultGenerateOptions()
	for _, opt := range g.defaults {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := g.alphabet.Load()
	ctx, span := observability.StartSpan(ctx, observability.SpanGenerate,
		trace.WithAttributes(observability.LengthAttrs(length, o.maxTries, a.Size(), o.uniqueChars)...))

	pw, attempts, substitutions, err := g.generate(ctx, a, length, o)
	span.SetAttributes(attribute.Int(observability.AttrAttempts, attempts))
	observability.EndSpan(span, err)
	g.metrics.RecordSubstitutions(ctx, substitutions)

	fields := logger.Fields(
		logger.FieldLength, length,
		logger.FieldAttempts, attempts,
		logger.FieldMaxTries, o.maxTries,
		logger.FieldAlphabetSize, a.Size(),
	)
	elapsed := time.Since(start)
	switch {
	case err == nil:
		g.metrics.RecordGenerate(ctx, observability.StatusOK, attempts, elapsed)
		log.Debug("password generated", logger.MergeWithDuration(fields, elapsed))
	case errors.HasCode(err, errors.ErrCodeGenerationExhausted):
		g.metrics.RecordGenerate(ctx, observability.StatusExhausted, attempts, elapsed)
		log.Warn("password generation exhausted; policies may be too strict for this length", fields)
	default:
		g.metrics.RecordGenerate(ctx, observability.StatusCanceled, attempts, elapsed)
		log.WithError(err).Debug("password generation canceled", fields)
	}
	return pw, err
}

// generate runs the draw/validate/repair loop against one alphabet snapshot.
func (g *Generator) generate(ctx context.Context, a *alphabet.Alphabet, length int, o generateOptions) (string, int, int, error) {
	symbols := a.Runes()
	candidate := make([]rune, length)
	substitutions := 0

	for attempt := 1; attempt <= o.maxTries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", attempt - 1, substitutions, err
		}

		for i := range candidate {
			candidate[i] = g.rng.Choice(symbols)
		}
		if !g.policies.Validate(string(candidate)) {
			continue
		}

		if o.uniqueChars {
			substitutions += g.deduplicate(a, candidate)
			if !g.policies.Validate(string(candidate)) {
				continue
			}
		}

		if o.shuffle {
			g.rng.Shuffle(candidate)
			// Order-sensitive policies such as NoSequential must see the final order.
			if !g.policies.Validate(string(candidate)) {
				continue
			}
		}

		return string(candidate), attempt, substitutions, nil
	}

	attempts := max(o.maxTries, 0)
	return "", attempts, substitutions, errors.GenerationExhausted(length, attempts)
}

// deduplicate replaces every repeat of an earlier character, left to right,
// with a character not yet present in candidate. It stops early, leaving the
// rest in place, once every alphabet character is in use. Returns the
// number of replacements.
func (g *Generator) deduplicate(a *alphabet.Alphabet, candidate []rune) int {
	used := make(map[rune]struct{}, len(candidate))
	var duplicates []int
	for i, r := range candidate {
		if _, seen := used[r]; seen {
			duplicates = append(duplicates, i)
			continue
		}
		used[r] = struct{}{}
	}

	replaced := 0
	for _, i := range duplicates {
		pool := a.Without(used)
		if len(pool) == 0 {
			break
		}
		r := g.rng.Choice(pool)
		used[r] = struct{}{}
		candidate[i] = r
		replaced++
	}
	return replaced
}
