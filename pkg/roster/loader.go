package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Load reads one raw candidate name per line from a plain text file.
// Blank lines and lines starting with '#' are skipped. maxNames caps
// how many names are taken (0 means all). Names are kept in file
// order; duplicates are kept as distinct candidates.
func Load(path string, maxNames int) (*Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file %s: %w", path, err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
		if maxNames > 0 && len(names) >= maxNames {
			log.Debugf("Roster capped at %d names", maxNames)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	log.Debugf("Loaded %d names from %s", len(names), path)
	return New(names), nil
}
