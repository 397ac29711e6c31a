// Package roster reads election rosters from tabular files. Excel workbooks
// go through excelize; plain CSV exports use the stdlib csv reader, mirroring
// the dual-format data reader pattern used elsewhere in this codebase's
// lineage.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"simlab/domain/election"
	"simlab/internal/errors"
	"simlab/ports"
)

// Reader handles reading roster tables from Excel and CSV files
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a roster reader that handles both Excel and CSV files
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// ReadRoster reads the roster table. The first row must be a header
// containing the columns name, votes and win_prob (any order, any case).
func (r *Reader) ReadRoster() (election.Roster, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.RosterInvalid(fmt.Sprintf("roster file not found: %s", r.filePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	return parseRoster(rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV roster")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV roster")
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel roster")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read roster sheet")
	}
	return rows, nil
}

func parseRoster(rows [][]string) (election.Roster, error) {
	if len(rows) < 2 {
		return nil, errors.RosterInvalid("roster needs a header row and at least one entity row")
	}

	nameCol, votesCol, probCol := -1, -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameCol = i
		case "votes":
			votesCol = i
		case "win_prob":
			probCol = i
		}
	}
	if nameCol < 0 || votesCol < 0 || probCol < 0 {
		return nil, errors.RosterInvalid("roster header must contain name, votes and win_prob columns")
	}

	roster := make(election.Roster, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue // trailing blank rows are common in exported sheets
		}
		if len(row) <= nameCol || len(row) <= votesCol || len(row) <= probCol {
			return nil, errors.RosterInvalid(fmt.Sprintf("roster row %d is missing columns", i+2))
		}
		votes, err := strconv.Atoi(strings.TrimSpace(row[votesCol]))
		if err != nil {
			return nil, errors.Wrapf(err, "roster row %d: votes must be an integer", i+2)
		}
		prob, err := strconv.ParseFloat(strings.TrimSpace(row[probCol]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "roster row %d: win_prob must be numeric", i+2)
		}
		roster = append(roster, election.Entity{
			Name:    strings.TrimSpace(row[nameCol]),
			Votes:   votes,
			WinProb: prob,
		})
	}
	return roster, nil
}

var _ ports.RosterPort = (*Reader)(nil)
