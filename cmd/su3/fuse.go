package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/su3/fusion"
	"github.com/katalvlaran/su3/young"
)

// fuseReport is the YAML shape of one decomposition.
type fuseReport struct {
	Left  string        `yaml:"left"`
	Right string        `yaml:"right"`
	Terms []fusion.Term `yaml:"terms"`
	Dim   int           `yaml:"dim"`
}

var fuseCmd = &cobra.Command{
	Use:   "fuse ROW1 ROW2 ROW1 ROW2",
	Short: "Decompose the tensor product of two irreps",
	Long: `Decompose the tensor product of two irreps into a direct sum with
multiplicities, in canonical order (ascending dimension).

Example:
  su3 fuse 2 1 2 1     # adjoint x adjoint: 1 + 2*8 + 10 + 10bar + 27`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := parseIrrep(args[0], args[1])
		if err != nil {
			return err
		}
		right, err := parseIrrep(args[2], args[3])
		if err != nil {
			return err
		}

		d := fusion.Fuse(left, right)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			out, err := yaml.Marshal(fuseReport{
				Left:  left.String(),
				Right: right.String(),
				Terms: d,
				Dim:   d.Dim(),
			})
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		case "text":
			fmt.Printf("%s ⊗ %s = %s\n", left, right, d)
			fmt.Printf("dim check: %d = %d·%d\n", d.Dim(), left.Dim(), right.Dim())
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		}

		draw, _ := cmd.Flags().GetBool("draw")
		if !draw {
			return nil
		}
		for _, term := range d {
			fmt.Printf("\n%d × %s (dim %d)\n%s\n", term.Mult, term.Irr, term.Irr.Dim(), young.Render(term.Irr))
		}

		return nil
	},
}

func init() {
	fuseCmd.Flags().String("format", "text", "output format: text or yaml")
	fuseCmd.Flags().Bool("draw", false, "draw the tableau of every term")
	rootCmd.AddCommand(fuseCmd)
}
