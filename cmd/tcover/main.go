/*
Package main implements the teamcover solver CLI.

teamcover finds every fixed-size team of candidate names that covers
the most distinct alphabet letters. Candidates are normalized to
lowercase letter sets, ranked by letter rarity so the search meets
high-value names first, and enumerated with a branch-and-bound search
that prunes against precomputed suffix coverage bounds.

# Usage

Solve with the builtin roster and the configured team size:

	tcover

Use a custom roster file (one raw name per line) and team size:

	tcover -roster names.txt -size 4

Run in interactive mode for prefix lookups and ad-hoc solves:

	tcover -c

# Configuration

Runtime configuration lives in a TOML file that is created with
defaults on first run:

	[solver]
	team_size = 5
	rarity_exponent = 100.0
	max_results = 0

	[roster]
	path = ""
	max_names = 0

	[cli]
	default_limit = 24
	min_prefix = 1
	max_prefix = 24

Flags override the config file; the rarity exponent only tunes search
speed, never which teams win.

# Output

Each best team is printed with its member names and the letters it
fails to cover:

	Team 1:
	gwen
	jhin
	...
	missing chars: 2 (qx)
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/teamcover/internal/cli"
	"github.com/bastiangx/teamcover/pkg/config"
	"github.com/bastiangx/teamcover/pkg/roster"
	"github.com/bastiangx/teamcover/pkg/solver"
)

const (
	Version = "0.3.0"
	AppName = "teamcover"
	gh      = "https://github.com/bastiangx/teamcover"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, roster and solver together. It does not
// implement any search logic, only the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	rosterPath := flag.String("roster", "", "Roster file with one raw name per line (empty = builtin list)")
	teamSize := flag.Int("size", -1, "Team size to search for (overrides config)")
	exponent := flag.Float64("exp", 0, "Rarity exponent, search speed tuning only (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Prefix lookup result cap in CLI mode (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	// Flags beat config file values.
	if *rosterPath != "" {
		cfg.Roster.Path = *rosterPath
	}
	if *teamSize >= 0 {
		cfg.Solver.TeamSize = *teamSize
	}
	if *exponent > 0 {
		cfg.Solver.RarityExponent = *exponent
	}
	if *limit > 0 {
		cfg.CLI.DefaultLimit = *limit
	}

	r, err := loadRoster(cfg)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	log.Debugf("Roster ready: %d candidates", r.Len())

	opts := solver.Options{
		RarityExponent: cfg.Solver.RarityExponent,
		MaxResults:     cfg.Solver.MaxResults,
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(r, opts, cfg.CLI.MinPrefix, cfg.CLI.MaxPrefix, cfg.CLI.DefaultLimit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	result, err := solver.Solve(r.Entities(), cfg.Solver.TeamSize, opts)
	if err != nil {
		log.Fatalf("Solve failed: %v", err)
	}
	printResult(result, cfg.Solver.TeamSize, r.Len())
}

// loadRoster picks the roster file from config or falls back to the
// builtin candidate list.
func loadRoster(cfg *config.Config) (*roster.Roster, error) {
	if cfg.Roster.Path == "" {
		log.Debug("No roster path set, using builtin list")
		return roster.Builtin(), nil
	}
	return roster.Load(cfg.Roster.Path, cfg.Roster.MaxNames)
}

var teamHeaderStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

// printResult renders every best team with its missing letters.
func printResult(result *solver.Result, size, candidates int) {
	if len(result.Teams) == 0 {
		fmt.Printf("no teams of size %d possible (%d candidates)\n", size, candidates)
		return
	}
	for i, team := range result.Teams {
		fmt.Println(teamHeaderStyle.Render(fmt.Sprintf("Team %d:", i+1)))
		for _, e := range team {
			fmt.Println(e.Name)
		}
		missing := team.Missing()
		fmt.Printf("missing chars: %d (%s)\n\n", len(missing), missing)
	}
}

// printVersion shows the version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ teamcover ] Finds teams with the best alphabet coverage!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
