package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ecodiv/abundance"
	"github.com/katalvlaran/ecodiv/diversity"
	"github.com/katalvlaran/ecodiv/taxtree"
)

// syntheticRootID names the root record generated when no lineage file
// is given.
const syntheticRootID = "root"

// newCalculator loads the collection per the command's flags and wires
// a calculator whose warnings land on stderr.
func newCalculator(cmd *cobra.Command) (*diversity.Calculator, error) {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = viper.GetString("input")
	}
	if input == "" {
		return nil, fmt.Errorf("--input is required")
	}
	lineage, _ := cmd.Flags().GetString("lineage")
	if lineage == "" {
		lineage = viper.GetString("lineage")
	}

	coll, err := loadCollection(input, lineage)
	if err != nil {
		return nil, err
	}

	warn := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
	}

	return diversity.New(coll, diversity.WithWarnHandler(warn))
}

// loadCollection reads the counts TSV (and lineage TSV when given) into
// an abundance.Collection. Without a lineage file every counts column
// becomes a species under a synthetic root, which supports every metric
// except rank filtering beyond species.
func loadCollection(countsPath, lineagePath string) (*abundance.Collection, error) {
	coll := abundance.NewCollection()

	header, rows, err := readTSV(countsPath)
	if err != nil {
		return nil, fmt.Errorf("counts %s: %w", countsPath, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("counts %s: need a sample column plus at least one taxon column", countsPath)
	}
	taxonIDs := header[1:]

	if lineagePath != "" {
		if err = loadLineage(coll, lineagePath); err != nil {
			return nil, err
		}
	} else {
		if err = coll.AddTaxon(taxtree.Taxon{ID: syntheticRootID, ParentID: syntheticRootID, Name: syntheticRootID, Rank: taxtree.RankNone}); err != nil {
			return nil, err
		}
		for _, id := range taxonIDs {
			if err = coll.AddTaxon(taxtree.Taxon{ID: id, ParentID: syntheticRootID, Name: id, Rank: taxtree.RankSpecies}); err != nil {
				return nil, fmt.Errorf("counts %s: %w", countsPath, err)
			}
		}
	}

	for n, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("counts %s: row %d has %d fields, header has %d", countsPath, n+2, len(row), len(header))
		}
		counts := make(map[string]float64, len(taxonIDs))
		for j, field := range row[1:] {
			v, convErr := strconv.ParseFloat(field, 64)
			if convErr != nil {
				return nil, fmt.Errorf("counts %s: row %d taxon %s: %w", countsPath, n+2, taxonIDs[j], convErr)
			}
			counts[taxonIDs[j]] = v
		}
		if err = coll.AddSample(row[0], counts); err != nil {
			return nil, fmt.Errorf("counts %s: %w", countsPath, err)
		}
	}

	return coll, nil
}

// loadLineage registers taxonomy records from a 4-column TSV:
// tax_id, parent_id, rank, name. A header row is skipped when its first
// field is "tax_id".
func loadLineage(coll *abundance.Collection, path string) error {
	header, rows, err := readTSV(path)
	if err != nil {
		return fmt.Errorf("lineage %s: %w", path, err)
	}
	if header[0] != "tax_id" {
		rows = append([][]string{header}, rows...)
	}
	for n, row := range rows {
		if len(row) != 4 {
			return fmt.Errorf("lineage %s: row %d has %d fields, want 4 (tax_id, parent_id, rank, name)", path, n+1, len(row))
		}
		tx := taxtree.Taxon{ID: row[0], ParentID: row[1], Rank: taxtree.Rank(row[2]), Name: row[3]}
		if err = coll.AddTaxon(tx); err != nil {
			return fmt.Errorf("lineage %s: row %d: %w", path, n+1, err)
		}
	}

	return nil
}

// readTSV returns the first row and the remaining rows of a
// tab-separated file.
func readTSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// writeMatrixTSV renders a labeled distance matrix as TSV on w.
func writeMatrixTSV(w io.Writer, dm interface {
	IDs() []string
	At(i, j int) float64
	Len() int
}) {
	ids := dm.IDs()
	fmt.Fprint(w, "sample")
	for _, id := range ids {
		fmt.Fprintf(w, "\t%s", id)
	}
	fmt.Fprintln(w)
	for i := 0; i < dm.Len(); i++ {
		fmt.Fprint(w, ids[i])
		for j := 0; j < dm.Len(); j++ {
			fmt.Fprintf(w, "\t%g", dm.At(i, j))
		}
		fmt.Fprintln(w)
	}
}
