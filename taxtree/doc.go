// Package taxtree models rank-annotated taxonomy trees and the three
// structural operations the diversity pipeline needs: building a tree
// from parent-pointer lineage records, pruning it to a single taxonomic
// rank, and wrapping it under a synthetic single-child root.
//
// 🚀 What is a taxonomy tree here?
//
//	A rooted tree whose nodes carry a taxon ID, a display name, a Rank
//	(kingdom … species, or NoRank for unranked internals) and a branch
//	length to their parent. Leaves after PruneRank are exactly the taxa
//	at the requested rank, which is what phylogenetic distance kernels
//	consume.
//
// ✨ Key operations:
//   - Build    — assemble a Tree from flat Taxon records (parent IDs)
//   - PruneRank — copy-prune so leaves sit at one rank
//   - WrapRoot — graft a synthetic unranked root with exactly one child
//     (wrap, don't mutate: the original tree is untouched)
//
// Determinism: children keep insertion order; Build inserts in the
// order records are given, so traversals are reproducible.
//
// ⚙️ Usage:
//
//	tree, err := taxtree.Build(taxa)
//	pruned, err := taxtree.PruneRank(tree, taxtree.RankGenus)
//	wrapped, err := taxtree.WrapRoot(pruned) // single-child root, shared subtree
package taxtree
