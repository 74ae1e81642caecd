// Package abundance holds sample-by-taxon abundance tables and the
// in-memory Collection that produces them.
//
// 🚀 What is an abundance table?
//
//	A dense float matrix: one row per sample, one column per taxon at a
//	single taxonomic rank. Cells carry read counts or relative
//	abundances. A Table records the EffectiveRank it was produced at —
//	important when the caller asked for RankAuto and the data holder
//	resolved it to a concrete rank.
//
// ✨ Key pieces:
//   - Table — immutable-by-convention matrix view with sample/taxon
//     labels, presence projection and scalar rescaling
//   - Collection — raw per-sample counts plus per-taxon lineage; builds
//     rank-filtered (optionally normalized) Tables, guesses whether the
//     stored counts are already normalized, and builds taxonomy trees
//
// Determinism: Table columns are sorted by taxon ID, rows follow sample
// insertion order into the Collection.
//
// ⚙️ Usage:
//
//	coll := abundance.NewCollection()
//	_ = coll.AddTaxon(taxtree.Taxon{ID: "1280", ParentID: "1279", Rank: taxtree.RankSpecies})
//	_ = coll.AddSample("S1", map[string]float64{"1280": 120})
//	tbl, err := coll.Table(taxtree.RankAuto, coll.GuessNormalized())
package abundance
