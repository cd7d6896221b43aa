package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kinematics-lab/linkage/internal/project"
	"github.com/kinematics-lab/linkage/internal/sqlite"
)

// commitDBName is the commit database file inside the data directory.
const commitDBName = "commits.db"

// loadDocument reads the project file into a fresh document.
func loadDocument() (*project.Document, error) {
	doc := project.New()
	if err := doc.LoadFile(flagFile); err != nil {
		return nil, err
	}
	return doc, nil
}

// openStore opens the commit database in the resolved data directory.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return sqlite.Open(filepath.Join(dataDir, commitDBName))
}

// parseRow parses a row-index argument.
func parseRow(arg string) (int, error) {
	row, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid row %q", arg)
	}
	return row, nil
}

// parseRows parses a comma-separated point row list ("0,1,4").
func parseRows(arg string) ([]int, error) {
	if arg == "" {
		return nil, nil
	}
	var rows []int
	for _, field := range strings.Split(arg, ",") {
		row, err := parseRow(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseNames parses a comma-separated link name list ("ground,L1").
func parseNames(arg string) []string {
	if arg == "" {
		return nil
	}
	var names []string
	for _, field := range strings.Split(arg, ",") {
		if field = strings.TrimSpace(field); field != "" {
			names = append(names, field)
		}
	}
	return names
}
