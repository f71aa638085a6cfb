package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/primext/dotarr"
	"github.com/katalvlaran/primext/internal/codec"
	"github.com/katalvlaran/primext/internal/config"
)

// ErrFormatRequired is returned when input comes from stdin and no format
// was configured.
var ErrFormatRequired = errors.New("cli: --format is required when reading stdin")

// app carries state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	file    string

	cfg    *config.Config
	logger *log.Logger
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns a fresh primext command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "primext",
		Short: "Query and edit nested documents with dot paths",
		Long: `primext reads a JSON, YAML, TOML, CUE or HCL document and applies
dot-path operations to it. Keys like "db.replicas.0.host" walk maps by key
and lists by index.

Settings come from flags, PRIMEXT_* environment variables and an optional
--config file, in that order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (json, yaml, toml, cue or hcl)")
	pf.StringVarP(&a.file, "file", "f", "", "input document (default stdin)")
	pf.String("format", "", "input format when it cannot be detected")
	pf.StringP("output", "o", "", "output format: json, yaml, toml, cue, hcl or text")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.Int("indent", 0, "spaces per indentation level")
	cobra.CheckErr(config.BindFlags(a.v, pf))

	root.AddCommand(
		newGetCommand(a),
		newSetCommand(a),
		newDeleteCommand(a),
		newHasCommand(a),
		newMatchesCommand(a),
		newConvertCommand(a),
		newFlattenCommand(a),
		newIsCommand(a),
		newPathsCommand(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "primext",
		Level:  level,
	})
	a.logger.Debug("configuration loaded",
		"config", a.cfgFile, "output", cfg.Output, "indent", cfg.Indent)

	return nil
}

// readDoc loads the input document from --file or stdin.
func (a *app) readDoc(cmd *cobra.Command) (dotarr.Map, error) {
	var (
		data []byte
		name = a.file
		err  error
	)
	if name == "" || name == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	f, err := a.inputFormat()
	if err != nil {
		return nil, err
	}
	doc, err := codec.Decode(data, f, name)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("document loaded", "file", name, "format", f, "keys", len(doc))

	return doc, nil
}

func (a *app) inputFormat() (codec.Format, error) {
	if a.cfg.Format != "" {
		return codec.ParseFormat(a.cfg.Format)
	}
	if a.file == "" || a.file == "-" {
		return "", ErrFormatRequired
	}

	return codec.Detect(a.file)
}

// write encodes v to stdout in the configured output format.
func (a *app) write(cmd *cobra.Command, v any) error {
	f, err := codec.ParseFormat(a.cfg.Output)
	if err != nil {
		return err
	}

	return codec.Encode(cmd.OutOrStdout(), v, f, a.cfg.Indent)
}
