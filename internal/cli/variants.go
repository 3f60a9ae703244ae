package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/linea/internal/services/rules"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the available win variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []VariantInfo
			for _, v := range rules.Variants() {
				result = append(result, VariantInfo{
					Code:        v.String(),
					Description: v.Description(),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}
