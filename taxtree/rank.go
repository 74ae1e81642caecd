package taxtree

// Rank is a taxonomic level. Selectable ranks form a closed set; RankAuto
// asks the consumer to resolve the most specific rank available, and
// RankNone marks unranked internal nodes (including the synthetic root
// added by WrapRoot).
type Rank string

const (
	// RankAuto defers rank selection to the data holder, which resolves
	// it to the most specific concrete rank present.
	RankAuto Rank = "auto"

	// RankKingdom is the most general concrete rank.
	RankKingdom Rank = "kingdom"

	// RankPhylum is the rank below kingdom.
	RankPhylum Rank = "phylum"

	// RankClass is the rank below phylum.
	RankClass Rank = "class"

	// RankOrder is the rank below class.
	RankOrder Rank = "order"

	// RankFamily is the rank below order.
	RankFamily Rank = "family"

	// RankGenus is the rank below family.
	RankGenus Rank = "genus"

	// RankSpecies is the most specific concrete rank.
	RankSpecies Rank = "species"

	// RankNone marks unranked nodes. It is never a valid selector.
	RankNone Rank = "no rank"
)

// concreteRanks lists the concrete ranks from most general to most
// specific. Order matters: Depth is the index into this slice.
var concreteRanks = []Rank{
	RankKingdom,
	RankPhylum,
	RankClass,
	RankOrder,
	RankFamily,
	RankGenus,
	RankSpecies,
}

// Ranks returns every rank accepted as a selector, RankAuto first, then
// concrete ranks from most general to most specific. The returned slice
// is a fresh copy.
func Ranks() []Rank {
	out := make([]Rank, 0, len(concreteRanks)+1)
	out = append(out, RankAuto)
	out = append(out, concreteRanks...)

	return out
}

// ConcreteRanks returns the concrete ranks (kingdom … species) from most
// general to most specific, as a fresh copy.
func ConcreteRanks() []Rank {
	out := make([]Rank, len(concreteRanks))
	copy(out, concreteRanks)

	return out
}

// Valid reports whether r is an accepted selector (RankAuto or one of
// the concrete ranks). RankNone is not a selector.
func (r Rank) Valid() bool {
	if r == RankAuto {
		return true
	}

	return r.Concrete()
}

// Concrete reports whether r is one of the seven concrete ranks.
func (r Rank) Concrete() bool {
	for _, c := range concreteRanks {
		if r == c {
			return true
		}
	}

	return false
}

// Depth returns the position of r in the kingdom→species hierarchy
// (kingdom=0 … species=6), or -1 for RankAuto, RankNone and anything
// outside the enum.
func (r Rank) Depth() int {
	for i, c := range concreteRanks {
		if r == c {
			return i
		}
	}

	return -1
}

// String implements fmt.Stringer.
func (r Rank) String() string { return string(r) }
