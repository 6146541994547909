package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/su3/fusion"
	"github.com/katalvlaran/su3/irrep"
)

var tableCmd = &cobra.Command{
	Use:   "table NBOXES",
	Short: "Print the fusion table of all irreps up to a box count",
	Long: `Print the decomposition of every pairwise product of irreps whose
tableaux carry at most NBOXES boxes, and verify the dimension identity
dim(A)*dim(B) = sum of mult*dim over the decomposition for each product.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nboxes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("NBOXES %q: %w", args[0], err)
		}
		if nboxes < 0 {
			return fmt.Errorf("NBOXES must be non-negative, got %d", nboxes)
		}

		var irreps []irrep.Irrep
		for row1 := 0; row1 <= nboxes; row1++ {
			for row2 := 0; row2 <= row1 && row1+row2 <= nboxes; row2++ {
				irreps = append(irreps, irrep.MustNew(row1, row2))
			}
		}

		products := 0
		for i, a := range irreps {
			for _, b := range irreps[i:] {
				d := fusion.Fuse(a, b)
				fmt.Printf("%s ⊗ %s = %s\n", a, b, d)
				if d.Dim() != a.Dim()*b.Dim() {
					return fmt.Errorf("dimension identity broken for %s ⊗ %s: %d != %d",
						a, b, d.Dim(), a.Dim()*b.Dim())
				}
				products++
			}
		}
		fmt.Printf("%d products, dimension identity holds for all\n", products)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
