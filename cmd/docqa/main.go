package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/docx"
	"github.com/fwojciec/docqa/gemini"
	"github.com/fwojciec/docqa/gosseract"
	"github.com/fwojciec/docqa/pdf"
	"github.com/fwojciec/docqa/serper"
	"github.com/fwojciec/docqa/session"
	docqaslog "github.com/fwojciec/docqa/slog"
	"github.com/fwojciec/docqa/text"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config holds the pipeline credentials. Set before calling Run().
	Config docqa.Config
}

// NewMain returns a new instance of Main with configuration read from
// the environment.
func NewMain() *Main {
	return &Main{
		Config: docqa.Config{
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			SerperAPIKey: os.Getenv("SERPER_API_KEY"),
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docqa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Session = &session.Session{Extractor: newRegistry()}

	// Only the ask command talks to external services; extract works
	// without credentials.
	if cmd == "ask" {
		if err := m.Config.Validate(); err != nil {
			fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY and SERPER_API_KEY in the environment")
			return err
		}

		client, err := gemini.NewClient(ctx, m.Config.GeminiAPIKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: stdslog.LevelWarn}))
		searcher := docqaslog.NewLoggingSearcher(
			serper.NewSearcher(m.Config.SerperAPIKey, serper.WithLogger(logger)),
			logger,
		)
		answerer := gemini.NewAnswerer(client, searcher, gemini.DefaultPrimaryModel, gemini.DefaultFallbackModel)
		deps.Session.Answerer = docqaslog.NewLoggingAnswerer(answerer, logger)
	}

	return kongCtx.Run(deps)
}

// newRegistry registers an extractor for every supported format.
func newRegistry() *docqa.Registry {
	registry := docqa.NewRegistry()
	registry.Register(docqa.FormatPDF, pdf.NewExtractor())
	registry.Register(docqa.FormatDOCX, docx.NewExtractor())
	registry.Register(docqa.FormatText, text.NewExtractor())

	ocr := gosseract.NewExtractor()
	for _, f := range []docqa.Format{docqa.FormatPNG, docqa.FormatJPG, docqa.FormatJPEG, docqa.FormatTIFF, docqa.FormatBMP} {
		registry.Register(f, ocr)
	}
	return registry
}
