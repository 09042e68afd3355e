package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/handleui/winnow/config"
	"github.com/handleui/winnow/diag"
	"github.com/handleui/winnow/dialects/matcher"
	"github.com/handleui/winnow/extract"
	"github.com/handleui/winnow/internal/logging"
	"github.com/handleui/winnow/internal/output"
)

// ErrDiagnosticsFound is returned when --fail-on-error is set and
// error-severity diagnostics were extracted. The diagnostics themselves
// have already been written to stdout when this is returned.
var ErrDiagnosticsFound = errors.New("error diagnostics found")

type parseFlags struct {
	matchersPath string
	glob         string
	format       string
	failOnError  bool
	progress     bool
}

const parseLongDescription = `Parse build logs into structured diagnostics.

Reads from stdin when no files are given. Every line runs through all
built-in dialects plus any custom matchers; a line may satisfy several
dialects and each hit is kept. Multiple files are parsed in parallel
and merged in input order.

Examples:
  make 2>&1 | winnow parse              # Parse a live build
  winnow parse build.log                # Parse a saved log
  winnow parse --glob 'logs/**/*.log'   # Parse many logs in parallel
  winnow parse --output json build.log  # JSON for tooling
  winnow parse --fail-on-error build.log && ./deploy.sh`

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse build logs into diagnostics",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.matchersPath, "matchers", "",
		"YAML file with custom matcher patterns")
	cmd.Flags().StringVar(&flags.glob, "glob", "",
		"glob pattern adding log files, relative to the working directory (supports **)")
	cmd.Flags().StringVarP(&flags.format, "output", "o", "text",
		"output format: text, json")
	cmd.Flags().BoolVar(&flags.failOnError, "fail-on-error", false,
		"exit nonzero when error diagnostics are found")
	cmd.Flags().BoolVar(&flags.progress, "progress", false,
		"log per-file parse statistics")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := logging.Default()

	var configs []matcher.Config
	if flags.matchersPath != "" {
		var err error
		configs, err = config.Load(flags.matchersPath)
		if err != nil {
			return fmt.Errorf("loading matchers: %w", err)
		}
		for _, res := range config.Lint(configs) {
			if res.Err != nil {
				logger.Warn("matcher pattern does not compile; it will never fire",
					logging.FieldMatchers, res.Name,
					logging.FieldError, res.Err)
			}
		}
	}

	files := make([]string, 0, len(args))
	files = append(files, args...)
	if flags.glob != "" {
		matches, err := expandGlob(flags.glob)
		if err != nil {
			return err
		}
		files = append(files, matches...)
	}

	merged := diag.NewCollection()
	if len(files) == 0 {
		session := extract.NewSession(configs...)
		if err := session.Consume(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		logSession(logger, flags.progress, "stdin", session)
		mergeInto(merged, session.Diagnostics())
	} else {
		logger.Debug("parsing files", logging.FieldFiles, len(files))
		sessions, err := parseFiles(cmd.Context(), files, configs)
		if err != nil {
			return err
		}
		for i, session := range sessions {
			logSession(logger, flags.progress, files[i], session)
			mergeInto(merged, session.Diagnostics())
		}
	}

	severities := merged.Severities()
	logger.Debug("extraction complete",
		logging.FieldDiagnostics, merged.Total,
		logging.FieldErrors, severities[diag.SeverityError],
		logging.FieldWarnings, severities[diag.SeverityWarning])

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	w := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		if err := output.FormatJSON(w, merged); err != nil {
			return fmt.Errorf("encoding diagnostics: %w", err)
		}
	case "text":
		output.FormatText(w, merged, output.IsColorEnabled(colorMode, w))
	default:
		return fmt.Errorf("invalid output format %q (want text or json)", flags.format)
	}

	if ExitCodeFromCollection(merged, flags.failOnError) != ExitSuccess {
		return ErrDiagnosticsFound
	}
	return nil
}

// parseFiles runs one extraction session per file, bounded by the CPU
// count, and returns the sessions in input order.
func parseFiles(ctx context.Context, files []string, configs []matcher.Config) ([]*extract.Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	sessions := make([]*extract.Session, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.NumCPU(), len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			session := extract.NewSession(configs...)
			if err := session.Consume(f); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			sessions[i] = session
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// expandGlob resolves a doublestar pattern against the working directory
// and returns matching regular files in lexical order.
func expandGlob(pattern string) ([]string, error) {
	fsys := os.DirFS(".")
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, match)
	}
	sort.Strings(files)
	return files, nil
}

// mergeInto appends every diagnostic in src to dst, preserving the
// per-file extraction order.
func mergeInto(dst, src *diag.Collection) {
	for _, file := range src.Files() {
		for _, d := range src.ByFile[file] {
			dst.Add(d)
		}
	}
	for _, d := range src.NoFile {
		dst.Add(d)
	}
}

// logSession reports per-source stream statistics. --progress raises
// the report to info level so it shows without --verbose.
func logSession(logger *log.Logger, visible bool, source string, s *extract.Session) {
	fields := []any{
		logging.FieldPath, source,
		logging.FieldLines, s.LinesFed(),
		logging.FieldDiagnostics, s.Diagnostics().Total,
		logging.FieldProgress, s.Progress(),
	}
	if s.LinesSkipped() > 0 {
		fields = append(fields, logging.FieldSkipped, s.LinesSkipped())
	}

	if visible {
		logger.Info("parsed", fields...)
	} else {
		logger.Debug("parsed", fields...)
	}
}
