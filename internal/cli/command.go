package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aerissecure/namedeck"
	"github.com/aerissecure/namedeck/internal/config"
	"github.com/aerissecure/namedeck/internal/logging"
	"github.com/aerissecure/namedeck/layout"
	"github.com/aerissecure/namedeck/names"
	"github.com/aerissecure/namedeck/phonetic"
	"github.com/aerissecure/namedeck/pptx"
	"github.com/aerissecure/namedeck/xlsx"
)

// app is the state shared by all sub-commands once config is loaded.
type app struct {
	cfg   *config.Config
	table layout.Table
	log   *zap.Logger
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "namedeck",
		Short: "Build name slides from a presentation template",
		Long: `namedeck turns a list of names into presentation slides cloned from a
template's first slide.

Names come from the first sheet of a workbook (--xlsx) or from a text file
with one name per line (--names, "-" for stdin).

Examples:
  namedeck --xlsx students.xlsx -o badges.pptx
  namedeck --template eg2 --names list.txt -o wall.pptx
  namedeck templates
  namedeck inspect --template eg1`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, flags)
		},
	}

	setupFlags(rootCmd, flags)
	rootCmd.AddCommand(newTemplatesCommand(a), newInspectCommand(a, flags))
	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.namedeck.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	cmd.Flags().StringVarP(&flags.Template, "template", "t", flags.Template, "Template id from the template table")
	cmd.Flags().StringVar(&flags.XLSXFile, "xlsx", "", "Read names from this workbook's first sheet")
	cmd.Flags().StringVar(&flags.Column, "column", xlsx.DefaultHeader, "Header of the name column; empty reads column A")
	cmd.Flags().StringVar(&flags.NamesFile, "names", "", "Read names from a text file, one per line (- for stdin)")
	cmd.Flags().BoolVar(&flags.Phonetic, "phonetic", flags.Phonetic, "Write the pinyin label on single-per-slide templates")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output .pptx path")
}

func (a *app) init(cmd *cobra.Command, flags *Flags) error {
	cfg, err := config.Load(viper.New(), flags.CfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.LogLevel
	}

	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("template table: %w", err)
	}

	log, err := logging.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg, a.table, a.log = cfg, table, log
	return nil
}

func (a *app) generate(cmd *cobra.Command, flags *Flags) error {
	list, err := readNames(flags, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return namedeck.ErrNoNames
	}

	gen := namedeck.NewGenerator(layout.NewResolver(a.table), openTemplate, phonetic.NewPinyin(), a.log)
	res, err := gen.GenerateNormalized(list, flags.Template, flags.Phonetic)
	if err != nil {
		return err
	}

	if err := res.Deck.SaveToFile(flags.Output); err != nil {
		return fmt.Errorf("save %s: %w", flags.Output, err)
	}

	out := cmd.OutOrStdout()
	for _, w := range res.Report.Shortfalls {
		fmt.Fprintf(out, "Warning: %v\n", w)
	}
	fmt.Fprintf(out, "Wrote %d slide(s) with %d name(s) to %s\n", res.Report.Slides, res.Report.Names, flags.Output)
	return nil
}

func openTemplate(path string) (namedeck.Deck, error) {
	d, err := pptx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// readNames returns the normalized names from the workbook when one is
// given, otherwise from the names file.
func readNames(flags *Flags, stdin io.Reader) ([]string, error) {
	switch {
	case flags.XLSXFile != "":
		f, err := os.Open(flags.XLSXFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		col, err := xlsx.ParseNameColumn(f, info.Size(), flags.Column)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", flags.XLSXFile, err)
		}
		return names.NormalizeAll(col.Values()), nil

	case flags.NamesFile == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return names.ParseText(string(data)), nil

	case flags.NamesFile != "":
		data, err := os.ReadFile(flags.NamesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read names file: %w", err)
		}
		return names.ParseText(string(data)), nil
	}
	return nil, fmt.Errorf("no input: use --xlsx or --names")
}

// -----------------------------------------------------------------------------
// Sub-commands
// -----------------------------------------------------------------------------

func newTemplatesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the configured templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tFILE")
			for _, tpl := range a.table.Templates() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", tpl.ID, tpl.Type, tpl.Path)
			}
			return tw.Flush()
		},
	}
}

func newInspectCommand(a *app, flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file.pptx]",
		Short: "Print the placeholders of a deck, checking templates against their layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				l    layout.Layout
			)
			switch {
			case flags.InspectTemplate != "":
				var err error
				l, err = layout.NewResolver(a.table).Resolve(flags.InspectTemplate)
				if err != nil {
					return err
				}
				path = l.Template.Path
			case len(args) == 1:
				path = args[0]
			default:
				return fmt.Errorf("give a file or --template")
			}

			d, err := pptx.OpenFile(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			m := pptx.ParseDeckModel(d)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", path, m)
			for _, s := range m.Slides {
				fmt.Fprintf(out, "  slide %d\n", s.Number)
				for _, ph := range s.Placeholders {
					fmt.Fprintf(out, "    %s\n", ph)
				}
			}

			if l.Type != 0 && len(m.Slides) > 0 {
				problems := pptx.Conformance(m.Slides[0], l)
				for _, p := range problems {
					fmt.Fprintf(out, "Problem: %s\n", p)
				}
				if len(problems) == 0 {
					fmt.Fprintf(out, "Authoring slide conforms to %s\n", l.Type)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.InspectTemplate, "template", "", "Inspect the file of this template id and check it")
	return cmd
}
