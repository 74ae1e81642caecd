package diversity_test

import (
	"fmt"

	"github.com/katalvlaran/ecodiv/abundance"
	"github.com/katalvlaran/ecodiv/diversity"
	"github.com/katalvlaran/ecodiv/taxtree"
)

// ExampleCalculator walks the full pipeline: build a collection,
// compute an alpha metric and a beta distance matrix.
func ExampleCalculator() {
	coll := abundance.NewCollection()
	for _, tx := range []taxtree.Taxon{
		{ID: "1", ParentID: "1", Name: "root", Rank: taxtree.RankNone},
		{ID: "2", ParentID: "1", Name: "Bacteria", Rank: taxtree.RankKingdom},
		{ID: "816", ParentID: "2", Name: "Bacteroides", Rank: taxtree.RankGenus},
		{ID: "1301", ParentID: "2", Name: "Streptococcus", Rank: taxtree.RankGenus},
	} {
		if err := coll.AddTaxon(tx); err != nil {
			fmt.Println("error:", err)

			return
		}
	}
	_ = coll.AddSample("gut-01", map[string]float64{"816": 60, "1301": 20})
	_ = coll.AddSample("gut-02", map[string]float64{"816": 20, "1301": 60})

	calc, err := diversity.New(coll)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	alpha, err := calc.AlphaDiversity(diversity.AlphaObservedTaxa, taxtree.RankAuto)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("observed taxa:", alpha.Values())

	beta, err := calc.BetaDiversity(diversity.BetaBrayCurtis, taxtree.RankAuto)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, _ := beta.AtID("gut-01", "gut-02")
	fmt.Printf("braycurtis(gut-01, gut-02)=%.2f\n", d)
	// Output:
	// observed taxa: [2 2]
	// braycurtis(gut-01, gut-02)=0.50
}

// ExampleCalculator_alphaDiversity shows the invalid-metric error
// enumerating the valid choices.
func ExampleCalculator_alphaDiversity() {
	coll := abundance.NewCollection()
	_ = coll.AddTaxon(taxtree.Taxon{ID: "1", ParentID: "1", Rank: taxtree.RankNone})
	_ = coll.AddTaxon(taxtree.Taxon{ID: "x", ParentID: "1", Rank: taxtree.RankSpecies})
	_ = coll.AddSample("S1", map[string]float64{"x": 3})

	calc, _ := diversity.New(coll)
	_, err := calc.AlphaDiversity("entropy", taxtree.RankAuto)
	fmt.Println(err)
	// Output:
	// diversity: unknown metric: for alpha diversity, metric must be one of: simpson, observed_taxa, shannon, chao1
}
