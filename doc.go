// Package ecodiv computes ecological diversity metrics over taxonomic
// abundance tables: alpha diversity, beta diversity, UniFrac and the
// Aitchison distance.
//
// 🚀 What is ecodiv?
//
//	A small, deterministic analytics library for microbiome-style data:
//	you bring a sample-by-taxon abundance table (and, for phylogenetic
//	metrics, a taxonomy tree), ecodiv handles the numerical bookkeeping:
//	  • Alpha diversity: Shannon, Simpson, observed taxa
//	  • Beta diversity: Bray-Curtis, Cityblock/Manhattan, Jaccard
//	  • Phylogenetic: weighted & unweighted UniFrac
//	  • Compositional: Aitchison distance (zero replacement + CLR)
//
// ✨ Why choose ecodiv?
//
//   - Deterministic – fixed column/row orders, no hidden randomness
//   - Honest numerics – exact matrix symmetry enforced where floating
//     point would otherwise betray you
//   - Clean errors – sentinel errors, matched with errors.Is
//   - Built on gonum – dense matrices & vector kernels, no hand-rolled
//     linear algebra
//
// Everything is organized under four subpackages plus a CLI:
//
//	taxtree/   — rank-annotated taxonomy trees: build, prune, wrap
//	abundance/ — abundance tables and the in-memory sample Collection
//	ecostat/   — numerical kernels & labeled distance matrices
//	diversity/ — the calculator: metric enums, validation, dispatch
//	cmd/ecodiv — TSV-in, TSV-out command line front end
//
// Quick sketch:
//
//	coll := abundance.NewCollection()
//	// ... AddTaxon / AddSample ...
//	calc, _ := diversity.New(coll)
//	dm, _ := calc.BetaDiversity(diversity.BetaBrayCurtis, taxtree.RankAuto)
//
// See each package's doc.go and example_test.go for full walkthroughs.
package ecodiv
