package abundance

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/ecodiv/taxtree"
)

// normalizedTolerance is how far a sample's total may drift from 1.0
// while the collection still counts as normalized. Covers accumulated
// float rounding from upstream normalization, nothing more.
const normalizedTolerance = 1e-6

// Collection is an in-memory set of samples with raw per-taxon counts
// plus the taxonomy lineage of every referenced taxon. It is the
// concrete data holder behind the diversity calculator: it produces
// rank-filtered Tables, guesses normalization state, and builds
// taxonomy trees.
//
// Not safe for concurrent mutation; reads after construction are pure.
type Collection struct {
	sampleIDs []string
	counts    map[string]map[string]float64

	taxonOrder []string
	taxa       map[string]taxtree.Taxon
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		counts: make(map[string]map[string]float64),
		taxa:   make(map[string]taxtree.Taxon),
	}
}

// AddTaxon registers a lineage record. Internal (unranked) nodes use
// taxtree.RankNone; countable taxa carry a concrete rank. Records are
// kept in insertion order for reproducible tree building.
//
// Errors: ErrEmptyID, ErrDuplicateID, ErrBadRank for ranks outside the
// enum (RankAuto included — data carries concrete ranks only).
func (c *Collection) AddTaxon(tx taxtree.Taxon) error {
	if tx.ID == "" {
		return ErrEmptyID
	}
	if _, dup := c.taxa[tx.ID]; dup {
		return fmt.Errorf("taxon %q: %w", tx.ID, ErrDuplicateID)
	}
	if !tx.Rank.Concrete() && tx.Rank != taxtree.RankNone {
		return fmt.Errorf("taxon %q rank %q: %w", tx.ID, tx.Rank, ErrBadRank)
	}
	c.taxa[tx.ID] = tx
	c.taxonOrder = append(c.taxonOrder, tx.ID)

	return nil
}

// AddSample registers a sample and its raw counts, keyed by taxon ID.
// Every referenced taxon must already be registered. The counts map is
// copied; later caller mutation has no effect.
//
// Errors: ErrEmptyID, ErrDuplicateID, ErrUnknownTaxon, ErrNegativeValue.
func (c *Collection) AddSample(id string, sampleCounts map[string]float64) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, dup := c.counts[id]; dup {
		return fmt.Errorf("sample %q: %w", id, ErrDuplicateID)
	}
	cp := make(map[string]float64, len(sampleCounts))
	for taxID, v := range sampleCounts {
		if _, known := c.taxa[taxID]; !known {
			return fmt.Errorf("sample %q taxon %q: %w", id, taxID, ErrUnknownTaxon)
		}
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("sample %q taxon %q: %w", id, taxID, ErrNegativeValue)
		}
		cp[taxID] = v
	}
	c.sampleIDs = append(c.sampleIDs, id)
	c.counts[id] = cp

	return nil
}

// Samples returns sample IDs in insertion order, as a fresh copy.
func (c *Collection) Samples() []string { return copyStrings(c.sampleIDs) }

// Table builds the abundance table at the given rank. RankAuto resolves
// to the most specific concrete rank that has registered taxa; the
// resolved rank is recorded as the table's EffectiveRank. Columns are
// taxa at the effective rank sorted by ID; rows follow sample insertion
// order. With normalize set, every row is divided by its sum.
//
// Errors: ErrBadRank, ErrNoSamples, ErrNoTaxa.
func (c *Collection) Table(rank taxtree.Rank, normalize bool) (*Table, error) {
	if !rank.Valid() {
		return nil, fmt.Errorf("rank %q: %w", rank, ErrBadRank)
	}
	if len(c.sampleIDs) == 0 {
		return nil, ErrNoSamples
	}

	effective := rank
	if rank == taxtree.RankAuto {
		var ok bool
		if effective, ok = c.autoRank(); !ok {
			return nil, ErrNoTaxa
		}
	}

	var taxa []string
	for id, tx := range c.taxa {
		if tx.Rank == effective {
			taxa = append(taxa, id)
		}
	}
	if len(taxa) == 0 {
		return nil, fmt.Errorf("rank %q: %w", effective, ErrNoTaxa)
	}
	sort.Strings(taxa)

	values := make([]float64, 0, len(c.sampleIDs)*len(taxa))
	for _, sid := range c.sampleIDs {
		row := c.counts[sid]
		for _, tid := range taxa {
			values = append(values, row[tid])
		}
	}

	tbl, err := NewTable(c.sampleIDs, taxa, values, effective)
	if err != nil {
		return nil, err
	}
	if normalize {
		tbl = tbl.Normalize()
	}

	return tbl, nil
}

// autoRank resolves RankAuto: the most specific concrete rank with at
// least one registered taxon.
func (c *Collection) autoRank() (taxtree.Rank, bool) {
	ranks := taxtree.ConcreteRanks()
	for i := len(ranks) - 1; i >= 0; i-- {
		for _, tx := range c.taxa {
			if tx.Rank == ranks[i] {
				return ranks[i], true
			}
		}
	}

	return taxtree.RankNone, false
}

// GuessNormalized reports whether the stored counts already look like
// relative abundances: every sample's total is within tolerance of 1.
// An empty collection is not normalized.
func (c *Collection) GuessNormalized() bool {
	if len(c.sampleIDs) == 0 {
		return false
	}
	for _, sid := range c.sampleIDs {
		row := make([]float64, 0, len(c.counts[sid]))
		for _, v := range c.counts[sid] {
			row = append(row, v)
		}
		total, err := stats.Sum(row)
		if err != nil || math.Abs(total-1) > normalizedTolerance {
			return false
		}
	}

	return true
}

// TreeBuild assembles the taxonomy tree from the registered lineage
// records, in insertion order. The records must include a root (a taxon
// whose ParentID is empty or itself).
func (c *Collection) TreeBuild() (*taxtree.Tree, error) {
	records := make([]taxtree.Taxon, 0, len(c.taxonOrder))
	for _, id := range c.taxonOrder {
		records = append(records, c.taxa[id])
	}

	return taxtree.Build(records)
}
