package jsonstore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/jsonstore/pkg/config"
	"github.com/arthur-debert/jsonstore/pkg/ui"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := ui.ParseFormat(a.flags.format)
			switch format {
			case ui.FormatJSON, ui.FormatYAML:
				return a.renderer.RenderResult(a.cfg)
			}
			data, err := a.cfg.ToTOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	})

	var target string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := target
			if path == "" {
				var err error
				if path, err = config.UserConfigPath(); err != nil {
					return err
				}
			}
			if err := config.WriteUserConfig(path); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}
	initCmd.Flags().StringVar(&target, "path", "", MsgFlagConfigInitPath)
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.configPath != "" {
				return a.renderer.RenderResult(a.flags.configPath)
			}
			path, err := config.UserConfigPath()
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(path)
		},
	})

	return cmd
}
