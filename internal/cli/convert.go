package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/colour"
)

func newConvertCmd() *cobra.Command {
	var from colour.Space
	to := colour.SpaceLCH

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours between hex, rgb, xyz, lab and lch",
		Long: `Convert one or more colours between colour spaces.

The source space is detected from the literal ("rgb(26, 43, 60)",
"lab(17, -1, -14)", "#1a2b3c") unless --from is given. Conversions walk the
chain hex, rgb, xyz, lab, lch one step at a time in either direction.

Examples:
  hueseed convert '#1a2b3c'
  hueseed convert --to hex 'lch(50, 40, 270)'
  hueseed convert --from rgb --to lab '26 43 60'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				space := from
				if space == "" {
					space = colour.DetectSpace(arg)
				}
				v, err := colour.ParseValue(arg, space)
				if err != nil {
					return err
				}
				out, err := colour.Convert(v, to)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.String())
			}
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "Source colour space (default: detected)")
	cmd.Flags().Var(&to, "to", "Target colour space")

	return cmd
}
