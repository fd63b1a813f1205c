package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/ka2n/tadoru/check"
	"github.com/ka2n/tadoru/mcp"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	checkExternalFlag bool
	timeoutFlag       int
	concurrencyFlag   int
	baseURLFlag       baseURLValue
	cacheDirFlag      string
	cacheTTLFlag      time.Duration
	watchFlag         bool
	pagerFlag         bool
	openFlag          bool
	configFlag        string

	// Root command
	rootCmd = &cobra.Command{
		Use:           "tadoru <site_dir> <report_path>",
		Short:         "Check a rendered static site for broken links",
		SilenceErrors: true,
		Long: `tadoru walks a rendered static site tree, extracts every link reference
from its HTML documents and validates internal paths, anchors and
(optionally) external URLs. It writes a markdown report and exits
non-zero when broken links are found, which makes it suitable as the
final gate of a site build.

External checking is off by default so plain runs never touch the
network.`,
		Args: func(cmd *cobra.Command, args []string) error {
			// サブコマンドの場合は引数チェックをスキップ
			if cmd.CommandPath() != "tadoru" {
				return nil
			}
			if len(args) != 2 {
				return fmt.Errorf("accepts 2 args (site_dir, report_path), but received %d", len(args))
			}
			return nil
		},
		RunE: runRoot,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tadoru version %s\n", Version)
			fmt.Printf("  commit: %s\n", vcsCommit())
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.Flags().BoolVar(&checkExternalFlag, "check-external", false, "Probe external http(s) links over the network")
	rootCmd.Flags().IntVar(&timeoutFlag, "timeout", 30, "Timeout for external link requests in seconds")
	rootCmd.Flags().IntVar(&concurrencyFlag, "concurrency", check.DefaultConcurrency, "Number of concurrent external probes")
	rootCmd.Flags().Var(&baseURLFlag, "base-url", "Site base URL; matching absolute links are checked as internal")
	rootCmd.Flags().StringVar(&cacheDirFlag, "cache-dir", "", "Persist external link verdicts in this directory")
	rootCmd.Flags().DurationVar(&cacheTTLFlag, "cache-ttl", 24*time.Hour, "Max age of persisted verdicts")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-run the check when the site tree changes")
	rootCmd.Flags().BoolVarP(&pagerFlag, "pager", "p", false, "Page the rendered report in the terminal")
	rootCmd.Flags().BoolVar(&openFlag, "open", false, "Open the written report in the browser")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Config file (default .tadoru.yaml in the working directory)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := applyConfigFile(cmd); err != nil {
		return err
	}

	siteDir := args[0]
	reportPath := args[1]

	cfg := check.DefaultConfig(siteDir)
	cfg.CheckExternal = checkExternalFlag
	cfg.Timeout = time.Duration(timeoutFlag) * time.Second
	cfg.Concurrency = concurrencyFlag
	cfg.BaseURL = baseURLFlag.Value
	cfg.CacheDir = cacheDirFlag
	cfg.CacheTTL = cacheTTLFlag

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchFlag {
		return runWatch(ctx, cfg, reportPath)
	}

	report, err := runOnce(ctx, cfg, reportPath)
	if err != nil {
		return err
	}

	if pagerFlag && isatty.IsTerminal(os.Stdout.Fd()) {
		if err := showReport(report.Markdown()); err != nil {
			return failure.Wrap(err)
		}
	}
	if openFlag {
		if err := browser.OpenFile(reportPath); err != nil {
			return failure.Wrap(err)
		}
	}

	if !report.Passed() {
		return failure.New(IssuesFound,
			failure.Message(fmt.Sprintf("Link checking completed with %d issues found", len(report.Issues))),
			failure.Context{
				"issues": fmt.Sprintf("%d", len(report.Issues)),
				"report": reportPath,
			},
		)
	}
	return nil
}

// runOnce performs a single check and writes the report artifact.
func runOnce(ctx context.Context, cfg check.Config, reportPath string) (*check.Report, error) {
	checker, err := check.New(cfg)
	if err != nil {
		return nil, err
	}

	report, err := checker.Run(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(reportPath, []byte(report.Markdown()), 0644); err != nil {
		return nil, failure.New(ReportWriteError,
			failure.Message("Failed to write report"),
			failure.Context{
				"path": reportPath,
			},
		)
	}

	fmt.Print(report.Summary())
	return report, nil
}

// vcsCommit prefers the ldflags-injected commit and falls back to the
// revision recorded in build info.
func vcsCommit() string {
	if Commit != "none" {
		return Commit
	}
	if i, ok := debug.ReadBuildInfo(); ok {
		if s, ok := lo.Find(i.Settings, func(s debug.BuildSetting) bool {
			return s.Key == "vcs.revision"
		}); ok {
			return s.Value
		}
	}
	return Commit
}
