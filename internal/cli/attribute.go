package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoval/provenly/internal/pipeline"
	"github.com/pkoval/provenly/internal/store"
)

var (
	attrSources     []string
	attrSourcesFile string
	attrSubject     string
	outJSON         string
	outMD           string
	outHTML         string
	timeout         time.Duration
	userAgent       string
	maxBytes        int64
	noCache         bool
	noFooter        bool
	insecureTLS     bool
	noRobots        bool
)

// attributeCmd represents the attribute command
var attributeCmd = &cobra.Command{
	Use:   "attribute <draft-file>",
	Short: "Attribute a draft's paragraphs and quotes to its sources",
	Long: `Attribute splits a draft into paragraphs, detects quotations, and
searches the given sources for supporting text.

Sources may be local files or URLs. URLs are fetched concurrently,
stripped of markup, and cached between runs.

Example:
  provenly attribute draft.md --source notes.txt --source transcript.txt
  provenly attribute draft.md --source https://example.com/press-release
  provenly attribute draft.md --sources-file sources.txt --md report.md --html report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runAttribute,
}

func init() {
	rootCmd.AddCommand(attributeCmd)

	// Source flags
	attributeCmd.Flags().StringArrayVar(&attrSources, "source", nil, "source file or URL (repeatable; files accept label=path)")
	attributeCmd.Flags().StringVar(&attrSourcesFile, "sources-file", "", "file listing sources, one per line")
	attributeCmd.Flags().StringVar(&attrSubject, "subject", "", "report subject (default: draft file name)")

	// Output flags
	attributeCmd.Flags().StringVar(&outJSON, "json", "provenance.json", "output JSON path")
	attributeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	attributeCmd.Flags().StringVar(&outHTML, "html", "", "output HTML path (optional)")

	// HTTP flags
	attributeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout including source fetches")
	attributeCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	attributeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read per source")
	attributeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable source cache (force fresh fetch)")
	attributeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	attributeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	attributeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt when fetching sources")
}

func runAttribute(cmd *cobra.Command, args []string) error {
	draftPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	draft, err := os.ReadFile(draftPath)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}

	subject := attrSubject
	if subject == "" {
		subject = strings.TrimSuffix(draftPath, ".md")
	}

	// Build configuration from flags
	cfg := loadConfig()
	cfg.HTTP.Timeout = timeout
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = !noFooter

	st, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	p := pipeline.NewPipeline(cfg, st)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Attributing: %s\n", draftPath)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	sources, err := collectSources(ctx, p, attrSources, attrSourcesFile)
	if err != nil {
		return err
	}

	report := p.AttributeDraft(ctx, subject, string(draft), sources)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d paragraphs\n", len(report.Provenance.Paragraphs))
		fmt.Fprintf(os.Stderr, "✓ Detected %d quotes\n", len(report.Provenance.Quotes))
		fmt.Fprintf(os.Stderr, "✓ Searched %d sources\n", len(sources))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, outHTML, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
