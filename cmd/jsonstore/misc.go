package jsonstore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/jsonstore/internal/version"
	"github.com/arthur-debert/jsonstore/pkg/ui"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if f, err := ui.ParseFormat(format); err == nil && (f == ui.FormatJSON || f == ui.FormatYAML) {
				r, err := ui.NewRenderer(f, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return r.RenderResult(version.Info())
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "jsonstore version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, err := fmt.Fprintf(out, "  built:  %s\n", version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
