package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/colortable/pkg/app"
	"github.com/darksworm/colortable/pkg/config"
	"github.com/darksworm/colortable/pkg/fake"
	"github.com/darksworm/colortable/pkg/logging"
	"github.com/darksworm/colortable/pkg/theme"
	"github.com/darksworm/colortable/pkg/tui/keys"
)

// appVersion is printed by -version.
// Override at build time: go build -ldflags "-X main.appVersion=1.0.0"
var appVersion = "dev"

// Color definitions for help output
var (
	helpTitleColor     = lipgloss.Color("14") // Cyan
	helpSectionColor   = lipgloss.Color("11") // Yellow
	helpHighlightColor = lipgloss.Color("10") // Green
	helpTextColor      = lipgloss.Color("15") // Bright white
	helpDimColor       = lipgloss.Color("8")  // Dim
)

// options holds the parsed command line.
type options struct {
	configPath  string
	theme       string
	rows        int
	seed        uint64
	replay      string
	color       bool
	showVersion bool
	showHelp    bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("colortable", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information and exit")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help information and exit")
	fs.StringVar(&opts.configPath, "config", "", "Path to config file (default "+config.GetConfigPathForHelp()+")")
	fs.StringVar(&opts.theme, "theme", "", fmt.Sprintf("Starting color theme (%s)", strings.Join(theme.Names(), ", ")))
	fs.IntVar(&opts.rows, "rows", 0, "Number of sample rows to generate")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed for sample data; 0 picks a random seed")
	fs.StringVar(&opts.replay, "replay", "", "Run without a terminal, replaying keys (e.g. \"jjl q\"), then print the final frame and state")
	fs.BoolVar(&opts.color, "color", false, "Keep colors in -replay output")
	return fs
}

// renderColorfulHelp creates the styled -help output
func renderColorfulHelp(fs *flag.FlagSet) string {
	var help strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(helpTitleColor).Bold(true)
	help.WriteString(titleStyle.Render("colortable"))
	help.WriteString(" - Scrollable, color-themed contact table\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(helpSectionColor).Bold(true)
	help.WriteString(sectionStyle.Render("USAGE"))
	help.WriteString("\n  ")
	help.WriteString(lipgloss.NewStyle().Foreground(helpTextColor).Render("colortable"))
	help.WriteString(lipgloss.NewStyle().Foreground(helpDimColor).Render(" [options]"))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("OPTIONS"))
	help.WriteString("\n")

	// Capture flag defaults to a buffer
	var flagBuf strings.Builder
	fs.SetOutput(&flagBuf)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)

	for _, line := range strings.Split(flagBuf.String(), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "  -") {
			parts := strings.Fields(line)
			help.WriteString("  ")
			help.WriteString(lipgloss.NewStyle().Foreground(helpHighlightColor).Render(parts[0]))
			if len(parts) > 1 {
				help.WriteString(" " + lipgloss.NewStyle().Foreground(helpTextColor).Render(strings.Join(parts[1:], " ")))
			}
			help.WriteString("\n")
		} else if strings.HasPrefix(line, "    \t") {
			help.WriteString(lipgloss.NewStyle().Foreground(helpDimColor).Render(line))
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(sectionStyle.Render("KEYS"))
	help.WriteString("\n  ")
	help.WriteString(lipgloss.NewStyle().Foreground(helpTextColor).Render(keys.DefaultKeyMap().HelpLine()))
	help.WriteString("\n  ")
	help.WriteString(lipgloss.NewStyle().Foreground(helpDimColor).Render("vim keys h/j/k/l work too; q and ctrl+c also quit"))
	help.WriteString("\n")

	return help.String()
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.showHelp = true
		} else {
			fmt.Fprintf(stderr, "Error parsing flags: %v\n", err)
			return 2
		}
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, appVersion)
		return 0
	}
	if opts.showHelp {
		fmt.Fprint(stdout, renderColorfulHelp(fs))
		return 0
	}

	logFile, err := logging.Setup()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	} else {
		defer logFile.Close()
	}
	logger := cblog.With("component", "app")

	set := setFlags(fs)
	cfg, err := loadConfig(opts, set)
	if err != nil {
		logger.Error("Invalid configuration", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rows, err := fake.Dataset(cfg.Data.Rows, cfg.Data.Seed)
	if err != nil {
		logger.Error("Could not build dataset", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	resolver, start := theme.FromConfig(cfg)
	session, err := app.NewSession(rows, resolver, start)
	if err != nil {
		logger.Error("Could not start session", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("Session ready", "rows", rows.Len(), "theme", theme.Resolve(start).Name)

	km := keys.DefaultKeyMap()

	if set["replay"] {
		vp := app.Viewport{Width: cfg.UI.Width, Height: cfg.UI.Height}
		if err := runReplay(ctx, stdout, session, km, opts.replay, vp, opts.color); err != nil {
			logger.Error("Replay failed", "err", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(NewModel(session, km), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("Program failed", "err", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	logger.Info("colortable exited", "snapshot", session.Snapshot())
	return 0
}

// setFlags reports which flags appeared on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// loadConfig reads the config file and lets flags that were given override it.
func loadConfig(opts options, set map[string]bool) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadConfigFromPath(opts.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if set["theme"] {
		if _, ok := theme.IndexOf(opts.theme); !ok {
			return nil, fmt.Errorf("unknown theme %q (available: %s)", opts.theme, strings.Join(theme.Names(), ", "))
		}
		cfg.Appearance.Theme = opts.theme
	}
	if set["rows"] {
		cfg.Data.Rows = opts.rows
	}
	if set["seed"] {
		cfg.Data.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
