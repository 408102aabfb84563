package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSourcesCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the available seed colour sources",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			all := global.registry.All()
			table := NewTable([]string{"NAME", "DESCRIPTION"})
			table.SetColumnMaxWidth(1, 60)
			for _, name := range global.registry.List() {
				table.AddRow([]string{name, all[name].Description()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
