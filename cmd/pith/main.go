package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/bloom"
	"github.com/fwojciec/pith/clean"
	"github.com/fwojciec/pith/detect"
	"github.com/fwojciec/pith/export"
	"github.com/fwojciec/pith/extract"
	"github.com/fwojciec/pith/fs"
	"github.com/fwojciec/pith/gemini"
	"github.com/fwojciec/pith/goquery"
	"github.com/fwojciec/pith/htmltomarkdown"
	pithhttp "github.com/fwojciec/pith/http"
	"github.com/fwojciec/pith/lingua"
	"github.com/fwojciec/pith/readability"
	"github.com/fwojciec/pith/redis"
	"github.com/fwojciec/pith/rod"
	"github.com/fwojciec/pith/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Capacity of the in-process duplicate index. Sized for a long interactive
// session; at this false-positive rate the filter stays under a megabyte.
const (
	dupIndexCapacity = 100000
	dupIndexFPRate   = 0.01
)

// Main represents the program.
type Main struct {
	// Persistent store path. Set before calling Run().
	StorePath string

	// SQLite database backing the persistent content store.
	DB *sqlite.DB

	// Extraction service for end-to-end testing.
	ContentService pith.ContentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		StorePath: defaultStorePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pith"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pith --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Default extraction options, overlaid from the config file when given
	opts := pith.DefaultExtractionOptions()
	if cli.Config != "" {
		fc, err := LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		if err := fc.Apply(opts); err != nil {
			return err
		}
	}
	deps.Options = opts

	// Open the persistent store
	m.DB = sqlite.NewDB(m.StorePath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PITH_DB to use a different store path\n")
		return fmt.Errorf("failed to open store at %q: %w", m.StorePath, err)
	}
	defer m.Close()

	// Result cache: in-process by default, Redis when PITH_REDIS is set
	var cache pith.ContentCache = extract.NewMemoryCache(pith.DefaultCacheMaxEntries, pith.DefaultCacheMaxSizeMB)
	if url := os.Getenv("PITH_REDIS"); url != "" {
		rc, err := redis.NewCache(url)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: PITH_REDIS must be a redis:// URL")
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rc.Close()
		cache = rc
	}

	exporter := export.NewExporter(htmltomarkdown.NewConverter())
	sitemaps := pithhttp.NewSitemapService(nil)

	svc := &extract.Service{
		Parser:      goquery.NewParser(),
		Cleaner:     clean.NewCleaner(),
		Detector:    detect.NewDetector(),
		Adapters:    newAdapterRegistry(),
		Cache:       cache,
		Store:       sqlite.NewContentStore(m.DB),
		Limiter:     extract.NewSlidingLimiter(pith.DefaultRateLimitRequests, pith.DefaultRateLimitWindow),
		Fallback:    readability.NewExtractor(),
		Duplicates:  bloom.NewIndex(dupIndexCapacity, dupIndexFPRate),
		Sitemaps:    sitemaps,
		Exporter:    exporter,
		Language:    lingua.NewDetector(),
		Readability: detect.NewReadabilityScorer(),
	}

	// Wire the fetcher based on the command's render flag
	if renderRequested(cmd, cli) {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		svc.Fetcher = fetcher
	} else {
		svc.Fetcher = pithhttp.NewFetcher(pithhttp.WithRetries())
	}

	if cmd == "extract" && cli.Extract.Summary {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		svc.Summarizer = gemini.NewAnalyzer(client)
	}

	m.ContentService = svc
	deps.Service = svc
	deps.Sitemaps = sitemaps
	deps.Exporter = exporter
	deps.Writers = func(dir string, format pith.ExportFormat) pith.ContentWriter {
		return fs.NewWriter(dir, exporter, format)
	}
	deps.Stores = func(dir, name string, format pith.ExportFormat) pith.SiteStore {
		return fs.NewSiteStore(dir, name, exporter, format)
	}

	return kongCtx.Run(deps)
}

// renderRequested reports whether the parsed command asked for a
// browser-rendered fetch.
func renderRequested(cmd string, cli *CLI) bool {
	switch cmd {
	case "extract":
		return cli.Extract.Render
	case "batch":
		return cli.Batch.Render
	case "site":
		return cli.Site.Render
	}
	return false
}

// newAdapterRegistry registers the built-in site adapters.
func newAdapterRegistry() *pith.Registry {
	r := pith.NewRegistry()
	_ = r.Register(goquery.NewWikipediaAdapter())
	_ = r.Register(goquery.NewMDNAdapter())
	_ = r.Register(goquery.NewGitHubAdapter())
	return r
}

func defaultStorePath() string {
	if path := os.Getenv("PITH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pith.db"
	}
	dir := filepath.Join(home, ".pith")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pith.db")
}
