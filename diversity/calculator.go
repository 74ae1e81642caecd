package diversity

import (
	"fmt"
	"log"

	"github.com/katalvlaran/ecodiv/abundance"
	"github.com/katalvlaran/ecodiv/ecostat"
	"github.com/katalvlaran/ecodiv/taxtree"
)

// unifracRescale blows normalized proportions up to integer-like
// magnitudes before phylogenetic kernels, which were designed around
// counts. The exact value is not meaningful — it only has to be large
// enough that tiny proportions do not degenerate to zero-count
// artifacts. Relative proportions are preserved.
const unifracRescale = 1e10

// Source is the taxonomy-providing host the calculator composes with.
// abundance.Collection satisfies it; any other data holder can too.
//
// Rank pruning is consumed as taxtree.PruneRank, not through Source:
// it operates on the returned tree, not on the holder's state.
type Source interface {
	// Table returns the abundance table at the given rank, optionally
	// row-normalized, with the resolved rank recorded on it.
	Table(rank taxtree.Rank, normalize bool) (*abundance.Table, error)

	// GuessNormalized reports whether the held counts already look like
	// relative abundances.
	GuessNormalized() bool

	// TreeBuild assembles the holder's taxonomy tree.
	TreeBuild() (*taxtree.Tree, error)
}

// WarnFunc receives non-fatal warnings (deprecated metric selections).
type WarnFunc func(format string, args ...any)

// Calculator computes diversity metrics over a Source. Calls are pure
// and independent: nothing is cached or mutated between invocations,
// and the source's tree is only ever wrapped, never modified.
type Calculator struct {
	src   Source
	warnf WarnFunc
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithWarnHandler routes non-fatal warnings to fn instead of the
// standard logger. A nil fn silences warnings.
func WithWarnHandler(fn WarnFunc) Option {
	return func(c *Calculator) {
		if fn == nil {
			fn = func(string, ...any) {}
		}
		c.warnf = fn
	}
}

// New returns a Calculator over src. Returns ErrNilSource for nil.
func New(src Source, opts ...Option) (*Calculator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := &Calculator{src: src, warnf: log.Printf}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// AlphaResult is a one-column table: one diversity value per sample,
// column named after the requested metric.
type AlphaResult struct {
	metric AlphaMetric
	ids    []string
	values []float64
}

// Metric returns the column name: the metric as requested, synonyms
// included (asking for chao1 labels the column chao1).
func (r *AlphaResult) Metric() AlphaMetric { return r.metric }

// Len returns the number of samples.
func (r *AlphaResult) Len() int { return len(r.ids) }

// Samples returns the row labels in order, as a fresh copy.
func (r *AlphaResult) Samples() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)

	return out
}

// Values returns the per-sample values in row order, as a fresh copy.
func (r *AlphaResult) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)

	return out
}

// At returns the value for row i.
func (r *AlphaResult) At(i int) float64 { return r.values[i] }

// AtID returns the value for the given sample.
func (r *AlphaResult) AtID(id string) (float64, error) {
	for i, sid := range r.ids {
		if sid == id {
			return r.values[i], nil
		}
	}

	return 0, fmt.Errorf("sample %q: %w", id, ecostat.ErrUnknownID)
}

// AlphaDiversity calculates the diversity within each sample's
// community at the given rank, one row per sample.
//
// Deprecated synonym selections (chao1) warn and proceed under the
// canonical computation. Invalid metrics return ErrUnknownMetric with
// the valid choices enumerated.
func (c *Calculator) AlphaDiversity(metric AlphaMetric, rank taxtree.Rank) (*AlphaResult, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: for alpha diversity, metric must be one of: %s",
			ErrUnknownMetric, joinAlphaMetrics())
	}
	if warning, deprecated := alphaDeprecations[metric]; deprecated {
		c.warnf("diversity: %s", warning)
	}

	tbl, err := c.src.Table(rank, c.src.GuessNormalized())
	if err != nil {
		return nil, err
	}

	values, err := ecostat.AlphaDiversity(canonicalAlpha(metric), tbl.Values(), tbl.Samples())
	if err != nil {
		return nil, err
	}

	return &AlphaResult{metric: metric, ids: tbl.Samples(), values: values}, nil
}

// BetaDiversity calculates the distance between every pair of sample
// communities at the given rank. UniFrac and Aitchison selections
// delegate entirely to their dedicated operations; Jaccard is computed
// over a presence/absence projection; manhattan is remapped to
// cityblock. The result is symmetric with a zero diagonal, indexed by
// sample ID on both axes.
func (c *Calculator) BetaDiversity(metric BetaMetric, rank taxtree.Rank) (*ecostat.DistanceMatrix, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: for beta diversity, metric must be one of: %s",
			ErrUnknownMetric, joinBetaMetrics())
	}

	switch metric {
	case BetaWeightedUniFrac:
		return c.UniFrac(true, rank)
	case BetaUnweightedUniFrac:
		return c.UniFrac(false, rank)
	case BetaAitchison:
		return c.AitchisonDistance(rank)
	}

	tbl, err := c.src.Table(rank, c.src.GuessNormalized())
	if err != nil {
		return nil, err
	}
	if metric == BetaJaccard {
		// Jaccard is defined on presence data; feeding magnitudes would
		// at best be ignored and at worst warp the result.
		tbl = tbl.Presence()
	}

	return ecostat.BetaDiversity(canonicalBeta(metric), tbl.Values(), tbl.Samples())
}

// UniFrac calculates phylogenetic beta diversity at the given rank.
// Weighted UniFrac considers abundances, unweighted considers presence.
//
// Normalized input is rescaled by a large constant first: the
// phylogenetic kernels expect count-like magnitudes, and rescaling
// preserves proportions. The source's tree is pruned to the table's
// effective rank and wrapped under a synthetic single-child root to
// satisfy the kernel's rooted-tree precondition; the source's own tree
// is never mutated, so repeated calls are side-effect-free.
func (c *Calculator) UniFrac(weighted bool, rank taxtree.Rank) (*ecostat.DistanceMatrix, error) {
	normalized := c.src.GuessNormalized()

	tbl, err := c.src.Table(rank, normalized)
	if err != nil {
		return nil, err
	}
	effectiveRank := tbl.EffectiveRank()

	if normalized {
		tbl = tbl.Scale(unifracRescale)
	}

	taxonIDs := tbl.Taxa()

	tree, err := c.src.TreeBuild()
	if err != nil {
		return nil, err
	}
	pruned, err := taxtree.PruneRank(tree, effectiveRank)
	if err != nil {
		return nil, err
	}
	wrapped, err := taxtree.WrapRoot(pruned)
	if err != nil {
		return nil, err
	}

	// The weighted variant is asked for its normalized form because the
	// input was rescaled, not naturally count-valued.
	return ecostat.UniFrac(tbl.Values(), tbl.Samples(), wrapped, taxonIDs, weighted, weighted)
}

// AitchisonDistance calculates the Euclidean distance between centered
// log-ratio transformed samples at the given rank. Zeros are first
// replaced with small positive values that keep each row summing to 1,
// since log-ratios are undefined at zero. Floating-point rounding in
// the pairwise step is canonicalized away: the returned matrix is
// exactly symmetric with an exactly zero diagonal.
func (c *Calculator) AitchisonDistance(rank taxtree.Rank) (*ecostat.DistanceMatrix, error) {
	tbl, err := c.src.Table(rank, c.src.GuessNormalized())
	if err != nil {
		return nil, err
	}

	replaced, err := ecostat.MultiplicativeReplacement(tbl.Values(), 0)
	if err != nil {
		return nil, err
	}
	transformed, err := ecostat.CLR(replaced)
	if err != nil {
		return nil, err
	}
	distances, err := ecostat.EuclideanDistances(transformed)
	if err != nil {
		return nil, err
	}
	symmetric, err := ecostat.SymmetrizeUpper(distances)
	if err != nil {
		return nil, err
	}

	return ecostat.NewDistanceMatrix(symmetric, tbl.Samples())
}
