package mapping

import (
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type collection = orderedmap.OrderedMap[string, Unit]

// Mapping is the compiled rule index. It is read-only once Build returns.
type Mapping struct {
	direct    *collection
	composite *collection
	glob      *collection

	// frozen views for the per-row scans
	compositeUnits []Unit
	globUnits      []Unit
}

// Rule is a compiled rule together with its kind and key
type Rule struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Key  string `json:"key" yaml:"key"`
	Unit Unit   `json:"rule" yaml:"rule"`
}

// Counts holds the number of rules per kind
type Counts struct {
	Direct    int `json:"direct"`
	Composite int `json:"composite"`
	Glob      int `json:"glob"`
}

// Total returns the number of compiled rules
func (c Counts) Total() int {
	return c.Direct + c.Composite + c.Glob
}

type buildOptions struct {
	columns          Columns
	strictDuplicates bool
}

// Option configures Build
type Option func(*buildOptions)

// WithColumns sets the mapping-table column names
func WithColumns(cols Columns) Option {
	return func(o *buildOptions) {
		o.columns = cols
	}
}

// WithStrictDuplicates makes a repeated rule key a build error instead of
// replacing the earlier rule
func WithStrictDuplicates(strict bool) Option {
	return func(o *buildOptions) {
		o.strictDuplicates = strict
	}
}

// Build compiles mapping-table rows into a Mapping
func Build(rows []*types.Row, opts ...Option) (*Mapping, error) {
	logger := logging.GetLogger("mapping.build")

	o := buildOptions{columns: DefaultColumns()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(rows) == 0 {
		return nil, errors.New(errors.ErrMappingBuild, "mappings should not be empty")
	}

	m := &Mapping{
		direct:    orderedmap.New[string, Unit](),
		composite: orderedmap.New[string, Unit](),
		glob:      orderedmap.New[string, Unit](),
	}

	for i, row := range rows {
		unit, err := UnitFromRow(row, o.columns)
		if err != nil {
			if pe, ok := err.(*errors.PricatError); ok {
				pe.WithDetail("row", i+1)
			}
			return nil, err
		}

		kind := unit.Kind()
		target := m.collectionFor(kind)
		key := unit.Key()

		if previous, exists := target.Get(key); exists {
			if o.strictDuplicates {
				return nil, errors.Newf(errors.ErrMappingDuplicate,
					"Duplicate %s mapping rule: %s", kind, key).
					WithDetail("row", i+1)
			}
			logDuplicate(logger, kind, key, previous, unit, i+1)
		}
		target.Set(key, unit)
	}

	m.compositeUnits = values(m.composite)
	m.globUnits = values(m.glob)

	counts := m.Counts()
	logger.Debug().
		Int("direct", counts.Direct).
		Int("composite", counts.Composite).
		Int("glob", counts.Glob).
		Msg("Mapping built")

	return m, nil
}

func logDuplicate(logger zerolog.Logger, kind Kind, key string, previous, next Unit, row int) {
	logger.Warn().
		Str("kind", kind.String()).
		Str("key", key).
		Int("row", row).
		Str("previous", previous.Destination.Type+"="+previous.Destination.Value).
		Str("replacement", next.Destination.Type+"="+next.Destination.Value).
		Msg("Mapping rule replaced by a later rule with the same key")
}

func (m *Mapping) collectionFor(kind Kind) *collection {
	switch kind {
	case KindGlob:
		return m.glob
	case KindComposite:
		return m.composite
	default:
		return m.direct
	}
}

func values(c *collection) []Unit {
	units := make([]Unit, 0, c.Len())
	for pair := c.Oldest(); pair != nil; pair = pair.Next() {
		units = append(units, pair.Value)
	}
	return units
}

// Get looks up a direct rule by source value and field
func (m *Mapping) Get(sourceValue, sourceType string) (Unit, bool) {
	return m.direct.Get(Key(sourceValue, sourceType))
}

// CompositeRules returns the composite rules in insertion order
func (m *Mapping) CompositeRules() []Unit {
	return m.compositeUnits
}

// GlobRules returns the glob rules in insertion order
func (m *Mapping) GlobRules() []Unit {
	return m.globUnits
}

// Counts returns the number of rules per kind
func (m *Mapping) Counts() Counts {
	return Counts{
		Direct:    m.direct.Len(),
		Composite: m.composite.Len(),
		Glob:      m.glob.Len(),
	}
}

// Rules lists every compiled rule: direct, then composite, then glob
func (m *Mapping) Rules() []Rule {
	rules := make([]Rule, 0, m.Counts().Total())
	for _, kind := range []Kind{KindDirect, KindComposite, KindGlob} {
		c := m.collectionFor(kind)
		for pair := c.Oldest(); pair != nil; pair = pair.Next() {
			rules = append(rules, Rule{Kind: kind, Key: pair.Key, Unit: pair.Value})
		}
	}
	return rules
}

// Validate checks every composite rule up front. The transformer performs
// the same check lazily.
func (m *Mapping) Validate() error {
	for _, unit := range m.compositeUnits {
		if _, err := unit.Conditions(); err != nil {
			return err
		}
	}
	return nil
}
