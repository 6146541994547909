package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/su3/irrep"
)

var rootCmd = &cobra.Command{
	Use:   "su3",
	Short: "su3 computes SU(3) irrep data and tensor-product decompositions",
	Long: `su3 works with irreducible representations of SU(3), labelled by
two-row Young tableaux (row1,row2) with row1 >= row2 >= 0.

It prints dimensions, duals and highest weights, draws tableaux, and
decomposes tensor products via the Littlewood-Richardson rule.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// parseIrrep builds a validated Irrep from two command-line arguments.
func parseIrrep(arg1, arg2 string) (irrep.Irrep, error) {
	row1, err := strconv.Atoi(arg1)
	if err != nil {
		return irrep.Irrep{}, fmt.Errorf("row1 %q: %w", arg1, err)
	}
	row2, err := strconv.Atoi(arg2)
	if err != nil {
		return irrep.Irrep{}, fmt.Errorf("row2 %q: %w", arg2, err)
	}

	return irrep.New(row1, row2)
}
