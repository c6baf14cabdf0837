package theme

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/gridcols/distribute"
)

// DefaultValueCount is the number of default value keys ("1".."12").
const DefaultValueCount = 12

// CenterConfig selects the center strategy revision.
type CenterConfig struct {
	Formula        string `yaml:"formula"`        // "shipped" (default) or "shifted"
	InclusiveIndex bool   `yaml:"inclusiveIndex"` // emit IndexInRow == ItemsInRow
}

// Theme is the resolved configuration of one stylesheet.
type Theme struct {
	// Prefix is prepended to every class name ("tw-" → .tw-grid-cols-center-3).
	Prefix string `yaml:"prefix"`
	// Values maps value keys to raw values; empty means derive or default.
	Values map[string]string `yaml:"gridTemplateColumnsCenter"`
	// GridTemplateColumns is an existing column scale whose integer keys
	// become the values when Values is empty.
	GridTemplateColumns map[string]string `yaml:"gridTemplateColumns"`
	// Strategies lists enabled strategy names; empty means all six.
	Strategies []string `yaml:"strategies"`
	// Center selects the center revision.
	Center CenterConfig `yaml:"center"`
	// MaxTarget overrides distribute.DefaultMaxTarget when positive.
	MaxTarget int `yaml:"maxTarget"`
}

// Value is one permitted utility value: the class suffix and the raw value
// handed to distribute.Utility.
type Value struct {
	Key string
	Raw string
}

// Default returns the plugin defaults: values "1".."12", every strategy,
// shipped center formula.
func Default() Theme {
	return Theme{Values: defaultValues()}
}

func defaultValues() map[string]string {
	out := make(map[string]string, DefaultValueCount)
	for i := 1; i <= DefaultValueCount; i++ {
		k := strconv.Itoa(i)
		out[k] = k
	}

	return out
}

// Keys returns the permitted values in stable order: integer keys ascending,
// then the remaining keys lexically.
func (t Theme) Keys() []Value {
	src := t.Values
	if len(src) == 0 {
		src = deriveValues(t.GridTemplateColumns)
	}
	if len(src) == 0 {
		src = defaultValues()
	}
	out := make([]Value, 0, len(src))
	for k, v := range src {
		out = append(out, Value{Key: k, Raw: v})
	}
	sort.Slice(out, func(i, j int) bool {
		ni, iok := intKey(out[i].Key)
		nj, jok := intKey(out[j].Key)
		switch {
		case iok && jok && ni != nj:
			return ni < nj
		case iok != jok:
			return iok
		}

		return out[i].Key < out[j].Key
	})

	return out
}

// deriveValues keeps the positive integer keys of a grid-template-columns scale.
func deriveValues(scale map[string]string) map[string]string {
	out := make(map[string]string)
	for k := range scale {
		if n, ok := intKey(k); ok && n > 0 {
			out[k] = k
		}
	}

	return out
}

func intKey(k string) (int, bool) {
	n, err := strconv.Atoi(k)

	return n, err == nil
}

// StrategyList resolves Strategies; empty means distribute.Strategies().
// Duplicates are dropped, first occurrence wins.
func (t Theme) StrategyList() ([]distribute.Strategy, error) {
	if len(t.Strategies) == 0 {
		return distribute.Strategies(), nil
	}
	seen := make(map[distribute.Strategy]bool, len(t.Strategies))
	out := make([]distribute.Strategy, 0, len(t.Strategies))
	for _, name := range t.Strategies {
		s, err := distribute.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("theme: strategies: %w", err)
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	return out, nil
}

// DistributeOptions maps the center config and MaxTarget to distribute options.
func (t Theme) DistributeOptions() ([]distribute.Option, error) {
	f, err := distribute.ParseCenterFormula(t.Center.Formula)
	if err != nil {
		return nil, fmt.Errorf("theme: center: %w", err)
	}
	opts := []distribute.Option{
		distribute.WithCenterFormula(f),
		distribute.WithCenterInclusiveIndex(t.Center.InclusiveIndex),
	}
	if t.MaxTarget < 0 {
		return nil, fmt.Errorf("theme: maxTarget=%d: %w", t.MaxTarget, ErrInvalidTheme)
	}
	if t.MaxTarget > 0 {
		opts = append(opts, distribute.WithMaxTarget(t.MaxTarget))
	}

	return opts, nil
}

// Validate reports the first unusable field.
func (t Theme) Validate() error {
	if _, err := t.StrategyList(); err != nil {
		return err
	}
	if _, err := t.DistributeOptions(); err != nil {
		return err
	}

	return nil
}
