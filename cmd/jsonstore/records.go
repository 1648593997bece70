package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/logging"
)

// keysCompletion completes record keys from the current root.
func keysCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if a.cfg == nil {
			if err := a.setup(cmd); err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
		}
		store, err := a.openStore()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		keys, err := store.Keys()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "get KEY [KEY...]",
		Short:             MsgGetShort,
		Long:              MsgGetLong,
		Example:           MsgGetExample,
		GroupID:           "records",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: keysCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				value, err := store.Get(args[0])
				if err != nil {
					return err
				}
				return a.renderer.RenderValue(args[0], value)
			}

			values, err := store.GetMany(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(values)
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	var (
		fromFile string
		asString bool
	)

	cmd := &cobra.Command{
		Use:     "set KEY [JSON]",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		GroupID: "records",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readSetInput(cmd, args, fromFile)
			if err != nil {
				return err
			}

			var value any
			if asString {
				value = string(raw)
			} else if value, err = decodeJSON(raw); err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.Set(args[0], value); err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.set")
			logger.Info().Str("key", args[0]).Msg("Record stored")
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", MsgFlagFile)
	cmd.Flags().BoolVarP(&asString, "string", "s", false, MsgFlagString)
	return cmd
}

// readSetInput returns the value text from the argument, a file, or stdin
// when the argument is "-" or missing.
func readSetInput(cmd *cobra.Command, args []string, fromFile string) ([]byte, error) {
	switch {
	case fromFile != "" && len(args) == 2:
		return nil, errors.New(errors.ErrInvalidArgument, MsgErrValueTwice)
	case fromFile != "":
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %s", fromFile).WithDetail("path", fromFile)
		}
		return data, nil
	case len(args) == 2 && args[1] != "-":
		return []byte(args[1]), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIO, "failed to read stdin")
		}
		return data, nil
	}
}

// decodeJSON parses exactly one JSON value, keeping numbers as written.
func decodeJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidArgument, MsgErrInvalidJSON)
	}
	if dec.More() {
		return nil, errors.New(errors.ErrInvalidArgument, MsgErrTrailingJSON)
	}
	return value, nil
}

func newHasCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:               "has KEY",
		Short:             MsgHasShort,
		Long:              MsgHasLong,
		GroupID:           "records",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keysCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			exists, err := store.Has(args[0])
			if err != nil {
				return err
			}
			if !quiet {
				if err := a.renderer.RenderResult(exists); err != nil {
					return err
				}
			}
			if !exists {
				return &ExitError{Code: ExitFailure}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "rm KEY [KEY...]",
		Aliases:           []string{"remove", "delete"},
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		GroupID:           "records",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: keysCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			for _, key := range args {
				if err := store.Remove(key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   MsgClearShort,
		Long:    MsgClearLong,
		GroupID: "records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.clear")
			logger.Info().Str("root", store.Root()).Msg("Store cleared")
			return nil
		},
	}
}

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Aliases: []string{"ls"},
		Short:   MsgKeysShort,
		Long:    MsgKeysLong,
		GroupID: "records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			keys, err := store.Keys()
			if err != nil {
				return err
			}
			return a.renderer.RenderKeys(keys)
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "path [KEY]",
		Short:             MsgPathShort,
		Long:              MsgPathLong,
		GroupID:           "records",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: keysCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return a.renderer.RenderResult(store.Root())
			}
			path, err := store.Path(args[0])
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(path)
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt)
			defer stop()

			events, err := store.Watch(ctx)
			if err != nil {
				return err
			}
			for event := range events {
				if err := a.renderer.RenderEvent(string(event.Op), event.Key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
