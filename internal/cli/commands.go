package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primext/dotarr"
	"github.com/katalvlaran/primext/internal/codec"
	"github.com/katalvlaran/primext/traverse"
)

// key turns command arguments into a dotarr key: one argument stays a
// scalar key, several become a batch.
func key(args []string) any {
	if len(args) == 1 {
		return args[0]
	}

	return args
}

// parseValue reads a command-line value as a YAML scalar or flow
// collection, so "5" is a number and "[a, b]" a list. Anything that does
// not parse stays a string.
func parseValue(s string) any {
	if s == "" {
		return s
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	return codec.Normalize(v)
}

func newGetCommand(a *app) *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "get KEY...",
		Short: "Print the value at one or more dot paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			var fallback any
			if cmd.Flags().Changed("default") {
				fallback = parseValue(def)
			}
			v, err := dotarr.Get(doc, key(args), fallback)
			if err != nil {
				return err
			}

			return a.write(cmd, v)
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "value printed for missing paths")

	return cmd
}

func newSetCommand(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "set KEY VALUE [KEY VALUE]...",
		Short: "Assign values and print the updated document",
		Long: `Assign each VALUE at its KEY, left to right, creating intermediate maps
and replacing scalars in the way. Values are read as YAML unless --raw is
given, so 5 is a number, true a boolean and [a, b] a list.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected KEY VALUE pairs, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			pairs := make([]dotarr.Pair, 0, len(args)/2)
			for i := 0; i < len(args); i += 2 {
				var v any = args[i+1]
				if !raw {
					v = parseValue(args[i+1])
				}
				pairs = append(pairs, dotarr.Pair{Key: args[i], Value: v})
			}
			if err = dotarr.SetMany(doc, pairs...); err != nil {
				return err
			}
			a.logger.Info("values set", "count", len(pairs))

			return a.write(cmd, doc)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "store values as plain strings")

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete KEY...",
		Aliases: []string{"forget", "rm"},
		Short:   "Remove dot paths and print the updated document",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			removed, err := dotarr.DeleteMany(doc, args)
			if err != nil {
				return err
			}
			for _, k := range args {
				if !removed[k] {
					a.logger.Warn("path not found", "path", k)
				}
			}

			return a.write(cmd, doc)
		},
	}
}

func newHasCommand(a *app) *cobra.Command {
	var anyOf bool
	cmd := &cobra.Command{
		Use:   "has KEY...",
		Short: "Report whether every (or with --any, some) path exists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			var ok bool
			if anyOf {
				ok, err = dotarr.HasAny(doc, args)
			} else {
				ok, err = dotarr.Has(doc, key(args))
			}
			if err != nil {
				return err
			}

			return a.write(cmd, ok)
		},
	}
	cmd.Flags().BoolVar(&anyOf, "any", false, "succeed when at least one path exists")

	return cmd
}

func newMatchesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matches KEY...",
		Short: "List the prefixes of the keys that resolve",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			found, err := dotarr.KeyMatches(doc, key(args))
			if err != nil {
				return err
			}

			return a.write(cmd, found)
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Expand dotted top-level keys into nested maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}

			return a.write(cmd, dotarr.Convert(doc))
		},
	}
}

func newFlattenCommand(a *app) *cobra.Command {
	var (
		prefix, sep string
		skipEmpty   bool
	)
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Collapse the document into one level of dotted keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			opts := []dotarr.FlattenOption{dotarr.WithPrefix(prefix), dotarr.WithSeparator(sep)}
			if skipEmpty {
				opts = append(opts, dotarr.WithoutEmpty())
			}

			return a.write(cmd, dotarr.Flatten(doc, opts...))
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix for every key")
	cmd.Flags().StringVar(&sep, "separator", dotarr.Separator, "segment separator")
	cmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "drop empty maps and lists")

	return cmd
}

func newIsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "is",
		Short: "Report whether no key in the document contains a dot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}

			return a.write(cmd, dotarr.Is(doc))
		},
	}
}

func newPathsCommand(a *app) *cobra.Command {
	var (
		leaves   bool
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List every dot path in depth-first order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			res, err := traverse.Walk(doc,
				traverse.WithContext(cmd.Context()),
				traverse.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}
			if leaves {
				return a.write(cmd, res.Leaves)
			}

			return a.write(cmd, res.Order)
		},
	}
	cmd.Flags().BoolVar(&leaves, "leaves", false, "only paths without children")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop descending below this depth (0 = unlimited)")

	return cmd
}
