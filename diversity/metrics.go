package diversity

import (
	"strings"

	"github.com/katalvlaran/ecodiv/ecostat"
)

// AlphaMetric selects a within-sample diversity statistic. The set is
// closed: validate with Valid before dispatching.
type AlphaMetric string

const (
	// AlphaSimpson is Simpson's index of diversity.
	AlphaSimpson AlphaMetric = "simpson"

	// AlphaObservedTaxa counts taxa with positive abundance.
	AlphaObservedTaxa AlphaMetric = "observed_taxa"

	// AlphaShannon is base-2 Shannon entropy.
	AlphaShannon AlphaMetric = "shannon"

	// AlphaChao1 is a deprecated synonym for AlphaObservedTaxa.
	//
	// Deprecated: use AlphaObservedTaxa.
	AlphaChao1 AlphaMetric = "chao1"
)

// BetaMetric selects a between-sample distance. The set is closed:
// validate with Valid before dispatching.
type BetaMetric string

const (
	// BetaJaccard is the Jaccard distance over presence/absence.
	BetaJaccard BetaMetric = "jaccard"

	// BetaBrayCurtis is the Bray-Curtis dissimilarity.
	BetaBrayCurtis BetaMetric = "braycurtis"

	// BetaCityblock is the L1 distance.
	BetaCityblock BetaMetric = "cityblock"

	// BetaManhattan is a synonym for BetaCityblock.
	BetaManhattan BetaMetric = "manhattan"

	// BetaAitchison is the Euclidean distance between CLR-transformed
	// compositions.
	BetaAitchison BetaMetric = "aitchison"

	// BetaWeightedUniFrac is abundance-weighted phylogenetic distance.
	BetaWeightedUniFrac BetaMetric = "weighted_unifrac"

	// BetaUnweightedUniFrac is presence-based phylogenetic distance.
	BetaUnweightedUniFrac BetaMetric = "unweighted_unifrac"
)

// alphaMetrics is the enum's single source of truth, in listing order.
var alphaMetrics = []AlphaMetric{
	AlphaSimpson,
	AlphaObservedTaxa,
	AlphaShannon,
	AlphaChao1,
}

// betaMetrics is the enum's single source of truth, in listing order.
var betaMetrics = []BetaMetric{
	BetaJaccard,
	BetaBrayCurtis,
	BetaCityblock,
	BetaManhattan,
	BetaAitchison,
	BetaWeightedUniFrac,
	BetaUnweightedUniFrac,
}

// AlphaMetrics returns every known alpha metric, as a fresh copy.
func AlphaMetrics() []AlphaMetric {
	out := make([]AlphaMetric, len(alphaMetrics))
	copy(out, alphaMetrics)

	return out
}

// BetaMetrics returns every known beta metric, as a fresh copy.
func BetaMetrics() []BetaMetric {
	out := make([]BetaMetric, len(betaMetrics))
	copy(out, betaMetrics)

	return out
}

// Valid reports membership in the alpha enum.
func (m AlphaMetric) Valid() bool {
	for _, known := range alphaMetrics {
		if m == known {
			return true
		}
	}

	return false
}

// Valid reports membership in the beta enum.
func (m BetaMetric) Valid() bool {
	for _, known := range betaMetrics {
		if m == known {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (m AlphaMetric) String() string { return string(m) }

// String implements fmt.Stringer.
func (m BetaMetric) String() string { return string(m) }

// Synonym and kernel-name tables. Lookup tables, not conditionals, so
// future synonyms are one-line additions.

// alphaSynonyms maps deprecated alpha metrics onto their canonical
// computation.
var alphaSynonyms = map[AlphaMetric]AlphaMetric{
	AlphaChao1: AlphaObservedTaxa,
}

// alphaDeprecations carries the warning emitted when a deprecated
// metric is selected. Selection proceeds under the synonym mapping.
var alphaDeprecations = map[AlphaMetric]string{
	AlphaChao1: "`chao1` is deprecated and will be removed in a future release; use `observed_taxa` instead",
}

// alphaKernelNames maps public alpha metrics onto ecostat kernel names
// where the vocabularies differ.
var alphaKernelNames = map[AlphaMetric]string{
	AlphaObservedTaxa: ecostat.MetricObservedOTUs,
}

// betaSynonyms maps synonym beta metrics onto the kernel's expected
// name.
var betaSynonyms = map[BetaMetric]BetaMetric{
	BetaManhattan: BetaCityblock,
}

// canonicalAlpha resolves synonyms and vocabulary differences into the
// ecostat kernel name.
func canonicalAlpha(m AlphaMetric) string {
	if syn, ok := alphaSynonyms[m]; ok {
		m = syn
	}
	if kernel, ok := alphaKernelNames[m]; ok {
		return kernel
	}

	return string(m)
}

// canonicalBeta resolves synonym beta metrics to the kernel name.
func canonicalBeta(m BetaMetric) string {
	if syn, ok := betaSynonyms[m]; ok {
		m = syn
	}

	return string(m)
}

// joinAlphaMetrics renders the valid alpha choices for error messages.
func joinAlphaMetrics() string {
	parts := make([]string, len(alphaMetrics))
	for i, m := range alphaMetrics {
		parts[i] = string(m)
	}

	return strings.Join(parts, ", ")
}

// joinBetaMetrics renders the valid beta choices for error messages.
func joinBetaMetrics() string {
	parts := make([]string, len(betaMetrics))
	for i, m := range betaMetrics {
		parts[i] = string(m)
	}

	return strings.Join(parts, ", ")
}
