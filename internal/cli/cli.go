package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"doc-localizer/internal/config"
	"doc-localizer/internal/document"
	"doc-localizer/internal/localize"
	"doc-localizer/internal/tabular"
	"doc-localizer/internal/textutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.ParseLevel())

	rootCmd := &cobra.Command{
		Use:   "doc-localizer",
		Short: "Generate language variants of a template document from a translation spreadsheet",
		Long: `doc-localizer matches a spreadsheet of translations against the
text-bearing elements of a template document (docx, svg or txt) and
writes one localized copy of the template per target language.`,
	}

	rootCmd.AddCommand(localizeCmd(cfg))
	rootCmd.AddCommand(elementsCmd())
	rootCmd.AddCommand(languagesCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func localizeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "localize <template> <spreadsheet>",
		Short: "Produce one localized copy of the template per target language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			targets, _ := cmd.Flags().GetStringSlice("targets")
			outDir, _ := cmd.Flags().GetString("out")
			yes, _ := cmd.Flags().GetBool("yes")
			failFast, _ := cmd.Flags().GetBool("fail-fast")
			reserved, _ := cmd.Flags().GetString("reserved-column")
			return runLocalize(args[0], args[1], source, targets, outDir, reserved, yes, failFast)
		},
	}

	cmd.Flags().String("source", cfg.SourceLanguage, "Source-language column name")
	cmd.Flags().StringSlice("targets", nil, "Target-language columns (default: all except source)")
	cmd.Flags().String("out", cfg.OutputDir, "Output directory (default: template's directory)")
	cmd.Flags().Bool("yes", false, "Proceed without confirmation when rows are unmatched")
	cmd.Flags().Bool("fail-fast", false, "Abort the whole batch on the first failed variant")
	cmd.Flags().String("reserved-column", cfg.ReservedColumn, "Row-number column to exclude from languages")
	if cfg.SourceLanguage == "" {
		cmd.MarkFlagRequired("source")
	}

	return cmd
}

func elementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements <document>",
		Short: "List the text-bearing elements of a document with their indices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements(args[0])
		},
	}
}

func languagesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages <spreadsheet>",
		Short: "List the language columns of a translation spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reserved, _ := cmd.Flags().GetString("reserved-column")
			return runLanguages(args[0], reserved)
		},
	}
	cmd.Flags().String("reserved-column", cfg.ReservedColumn, "Row-number column to exclude from languages")
	return cmd
}

// runLocalize handles the `localize` command.
func runLocalize(templatePath, tablePath, source string, targets []string, outDir, reserved string, yes, failFast bool) error {
	runner := localize.NewRunner(document.NewRegistry(), tabular.NewRegistry(reserved))

	opts := localize.Options{
		Source:   source,
		Targets:  targets,
		OutDir:   outDir,
		FailFast: failFast,
	}
	if !yes {
		opts.Confirm = confirmUnmatched
	}

	report, err := runner.Run(templatePath, tablePath, opts)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		fmt.Printf("%s\t%s\t%d edits\n", res.Language, res.Path, res.Edits)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", f.Language, f.Err)
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d of %d variants failed", len(report.Failures), len(report.Failures)+len(report.Results))
	}
	return nil
}

// confirmUnmatched replaces the original confirmation dialog: print the
// rows that found no element and ask whether to continue.
func confirmUnmatched(unmatched []string) bool {
	fmt.Fprintf(os.Stderr, "%d rows have no matching element:\n", len(unmatched))
	for _, text := range unmatched {
		fmt.Fprintf(os.Stderr, "  %s\n", textutil.Truncate(text, 60))
	}
	fmt.Fprint(os.Stderr, "Continue anyway? [y/N] ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// runElements handles the `elements` command.
func runElements(path string) error {
	registry := document.NewRegistry()
	access, err := registry.ForPath(path)
	if err != nil {
		return err
	}

	doc, err := access.Open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	for i, el := range doc.TextElements() {
		fmt.Printf("%d\t%s\n", i, el.Text())
	}
	return nil
}

// runLanguages handles the `languages` command.
func runLanguages(path, reserved string) error {
	table, err := tabular.NewRegistry(reserved).Parse(path)
	if err != nil {
		return err
	}
	for _, col := range table.Columns {
		fmt.Println(col)
	}
	fmt.Fprintf(os.Stderr, "%d rows\n", len(table.Rows))
	return nil
}
