package stylesheet

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridcols/distribute"
	"github.com/katalvlaran/gridcols/internal/ctxlog"
	"github.com/katalvlaran/gridcols/theme"
)

// Entry is one generated utility class.
type Entry struct {
	Class string
	Rule  distribute.Rule
}

// Generator renders themes into Sheets. It is immutable and safe for
// concurrent use.
type Generator struct {
	cfg config
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// ClassName returns the class name (without the leading dot) for strategy s
// and value key.
func ClassName(prefix string, s distribute.Strategy, key string) string {
	return prefix + s.UtilityName() + "-" + key
}

// Generate computes every class of th.
//
// Errors: theme validation errors, and ctx.Err() if ctx is cancelled before
// all strategies finish.
func (g *Generator) Generate(ctx context.Context, th theme.Theme) (Sheet, error) {
	logger := ctxlog.FromContext(ctx)

	strategies, err := th.StrategyList()
	if err != nil {
		return Sheet{}, err
	}
	distOpts, err := th.DistributeOptions()
	if err != nil {
		return Sheet{}, err
	}
	distOpts = append(distOpts, g.cfg.distOpts...)
	prefix := th.Prefix
	if g.cfg.prefixSet {
		prefix = g.cfg.prefix
	}
	values := th.Keys()
	logger.Debug("Generating stylesheet.", "strategies", len(strategies), "values", len(values), "prefix", prefix)

	results := make([][]Entry, len(strategies))
	eg, egCtx := errgroup.WithContext(ctx)
	if g.cfg.concurrency > 0 {
		eg.SetLimit(g.cfg.concurrency)
	}
	for i, s := range strategies {
		eg.Go(func() error {
			entries := make([]Entry, 0, len(values))
			for _, v := range values {
				if err := egCtx.Err(); err != nil {
					return fmt.Errorf("stylesheet: %s: %w", s.UtilityName(), err)
				}
				r := distribute.Utility(s, v.Raw, distOpts...)
				if r.IsEmpty() {
					logger.Debug("Skipping value without a rule.", "utility", s.UtilityName(), "key", v.Key, "value", v.Raw)
					continue
				}
				entries = append(entries, Entry{Class: ClassName(prefix, s, v.Key), Rule: r})
			}
			results[i] = entries

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Sheet{}, err
	}

	sheet := Sheet{compact: g.cfg.compact}
	for _, entries := range results {
		sheet.Entries = append(sheet.Entries, entries...)
	}
	logger.Info("Stylesheet generated.", "classes", len(sheet.Entries))

	return sheet, nil
}
