// Package ecostat implements the numerical kernels behind the diversity
// calculator: per-sample alpha-diversity statistics, pairwise
// beta-diversity distances, phylogenetic UniFrac, compositional
// transforms, and the labeled DistanceMatrix result type.
//
// 🚀 What lives here?
//
//   - Alpha kernels: Shannon (base-2), Simpson, ObservedOTUs —
//     dispatched by name through AlphaDiversity
//   - Beta kernels: BrayCurtis, Cityblock, Jaccard — dispatched by name
//     through BetaDiversity, output always exactly symmetric with a
//     zero diagonal
//   - UniFrac: weighted (optionally normalized) and unweighted variants
//     over a rooted taxonomy tree whose root has at most two children
//   - Compositional: MultiplicativeReplacement (zero estimation that
//     preserves row sums) and CLR (centered log-ratio)
//   - EuclideanDistances: full pairwise L2 matrix, every cell computed
//     independently — pair with SymmetrizeUpper when exact symmetry is
//     required
//   - SymmetrizeUpper: canonicalize any square matrix from its upper
//     triangle (U + Uᵀ − diag(U))
//
// ✨ Numeric policy:
//   - Vector kernels are gonum (floats.Distance, stat over proportions);
//     no hand-rolled linear algebra
//   - Deterministic loop orders; identical inputs give identical outputs
//   - Kernels do NOT validate that inputs are integer counts — callers
//     feed normalized proportions on purpose
//
// ⚙️ Usage:
//
//	dm, err := ecostat.BetaDiversity(ecostat.MetricBrayCurtis, values, sampleIDs)
//	d, err := dm.AtID("S1", "S2")
package ecostat
