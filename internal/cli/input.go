// Package cli handles cmd line input for poking at the roster and
// running solves interactively, mainly for DBG and testing.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/teamcover/internal/utils"
	"github.com/bastiangx/teamcover/pkg/roster"
	"github.com/bastiangx/teamcover/pkg/solver"
)

// InputHandler processes user input from stdin. A bare word runs a
// prefix lookup against the roster; ":solve N" runs the search for
// team size N; ":quit" exits.
type InputHandler struct {
	roster          *roster.Roster
	opts            solver.Options
	minPrefixLength int
	maxPrefixLength int
	lookupLimit     int
	requestCount    int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(r *roster.Roster, opts solver.Options, minLength, maxLength, limit int) *InputHandler {
	return &InputHandler{
		roster:          r,
		opts:            opts,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		lookupLimit:     limit,
	}
}

// Start begins the interface loop. It continuously prompts for input,
// reads a line from stdin, and dispatches it until EOF or :quit.
func (h *InputHandler) Start() error {
	log.Print("teamcover CLI")
	log.Printf("roster: %d candidates", h.roster.Len())
	log.Print("type a prefix for lookup, :solve N to search, :quit to exit")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if done := h.handleCommand(line); done {
				return nil
			}
			continue
		}
		h.handleLookup(line)
	}
}

// handleCommand dispatches ":"-prefixed commands. Returns true when
// the loop should exit.
func (h *InputHandler) handleCommand(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":solve":
		if len(fields) != 2 {
			log.Error("usage: :solve N")
			return false
		}
		size, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Errorf("not a team size: %s", fields[1])
			return false
		}
		h.handleSolve(size)
	default:
		log.Errorf("unknown command: %s", fields[0])
	}
	return false
}

// handleLookup runs a prefix query against the roster index.
func (h *InputHandler) handleLookup(prefix string) {
	h.requestCount++

	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}
	if !utils.IsValidQuery(prefix) {
		log.Errorf("Invalid prefix: %s", prefix)
		return
	}

	canonical := roster.Normalize(prefix)
	start := time.Now()
	matches := h.roster.LookupPrefix(canonical, h.lookupLimit)
	elapsed := time.Since(start)

	if len(matches) == 0 {
		fmt.Printf("no candidates match %q\n", canonical)
		return
	}
	for _, m := range matches {
		dup := ""
		if m.Count > 1 {
			dup = fmt.Sprintf(" x%d", m.Count)
		}
		fmt.Printf("  %s%s  letters=%s missing=%d\n", m.Name, dup, m.Mask.Letters(), len(m.Mask.Missing()))
	}
	log.Debugf("lookup %q: %d matches in %v", canonical, len(matches), elapsed)
}

// handleSolve runs the search and prints every best team.
func (h *InputHandler) handleSolve(size int) {
	start := time.Now()
	result, err := solver.Solve(h.roster.Entities(), size, h.opts)
	if err != nil {
		log.Errorf("solve failed: %v", err)
		return
	}
	elapsed := time.Since(start)

	if len(result.Teams) == 0 {
		fmt.Printf("no teams of size %d possible (%d candidates)\n", size, h.roster.Len())
		return
	}
	for i, team := range result.Teams {
		fmt.Printf("Team %d:\n", i+1)
		for _, e := range team {
			fmt.Println(e.Name)
		}
		missing := team.Missing()
		fmt.Printf("missing chars: %d (%s)\n\n", len(missing), missing)
	}
	log.Debugf("solved size %d: coverage %d, %d teams in %v", size, result.Coverage, len(result.Teams), elapsed)
}
