package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/su3/young"
)

var infoCmd = &cobra.Command{
	Use:   "info ROW1 ROW2",
	Short: "Print dimension, weight, and dual of one irrep",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ir, err := parseIrrep(args[0], args[1])
		if err != nil {
			return err
		}

		p, q := ir.HighestWeight()
		fmt.Printf("irrep:          %s\n", ir)
		fmt.Printf("dimension:      %d\n", ir.Dim())
		fmt.Printf("boxes:          %d\n", ir.NBoxes())
		fmt.Printf("highest weight: (%d,%d)\n", p, q)
		fmt.Printf("dual:           %s\n", ir.Dual())

		draw, _ := cmd.Flags().GetBool("draw")
		if !draw {
			return nil
		}
		color, _ := cmd.Flags().GetBool("color")
		if color {
			fmt.Println(young.RenderStyled(ir, young.DefaultStyleOptions()))
		} else {
			fmt.Println(young.Render(ir))
		}

		return nil
	},
}

func init() {
	infoCmd.Flags().Bool("draw", false, "draw the Young tableau")
	infoCmd.Flags().Bool("color", false, "color the tableau rows (implies --draw output styling)")
	rootCmd.AddCommand(infoCmd)
}
