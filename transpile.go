package vectors

import (
	"context"
	"errors"
	"io"
)

// Transpile reads a vector file from r and writes the generated C source to
// w. Records are emitted as soon as they are parsed; on error, w may hold a
// truncated, non-compilable prefix of the output.
func Transpile(ctx context.Context, r io.Reader, w io.Writer, cfg Config) (Stats, error) {
	log := cfg.logger().WithSource(cfg.source())
	cfg.Logger = log

	var digest *digestReader
	if cfg.Digest {
		d, err := newDigestReader(r)
		if err != nil {
			return Stats{}, err
		}
		digest = d
		r = d
	}

	p := NewParser(r, cfg)
	e := NewEmitter(w, cfg)
	stats, err := run(ctx, p, e)
	stats.Skipped = p.Skipped()
	if err != nil {
		log.LogSummary(stats, err)
		return stats, err
	}

	if digest != nil {
		e.SetDigest(digest.Sum())
	}
	if err := e.Close(); err != nil {
		log.LogSummary(stats, err)
		return stats, err
	}
	log.LogSummary(stats, nil)
	return stats, nil
}

// run emits every record from src until it is exhausted.
func run(ctx context.Context, src RecordSource, e *Emitter) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		before := e.Arrays()
		if err := e.Emit(rec); err != nil {
			return stats, err
		}
		stats.Records++
		stats.Arrays += e.Arrays() - before
		rec.discard()
	}
}
