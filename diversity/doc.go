// Package diversity is the coordination layer of ecodiv: it validates a
// requested metric against a closed enum, pulls a rank-filtered
// abundance table from its data source, dispatches to the right
// numerical kernel, and post-processes the result into a stable,
// correctly labeled shape.
//
// 🚀 The four operations:
//
//	calc, err := diversity.New(source)
//	alpha, err := calc.AlphaDiversity(diversity.AlphaShannon, taxtree.RankAuto)
//	beta,  err := calc.BetaDiversity(diversity.BetaBrayCurtis, taxtree.RankAuto)
//	uf,    err := calc.UniFrac(true, taxtree.RankAuto)
//	ait,   err := calc.AitchisonDistance(taxtree.RankAuto)
//
// ✨ What the calculator takes care of:
//   - Closed-set metric validation with errors that enumerate the valid
//     choices (match with errors.Is(err, diversity.ErrUnknownMetric))
//   - Deprecated synonyms (chao1 → observed_taxa, manhattan → cityblock)
//     via static lookup tables; deprecations warn through the
//     WithWarnHandler hook and keep going
//   - Normalization bookkeeping: tables are normalized per the source's
//     own detection, and normalized input is rescaled to integer-like
//     magnitudes before phylogenetic kernels
//   - Tree plumbing for UniFrac: build, prune to the table's effective
//     rank, wrap under a synthetic single-child root (the source's tree
//     is never mutated)
//   - Exact symmetry of the Aitchison result via upper-triangle
//     canonicalization
//
// Every call is a one-shot, single-threaded, deterministic computation:
// no state is shared between invocations and nothing is retried.
package diversity
