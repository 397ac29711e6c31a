package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"simlab/domain/election"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRoster_CSV(t *testing.T) {
	path := writeTempCSV(t, "name,votes,win_prob\nAlpha,10,1.0\nBeta,20,0.0\n")

	roster, err := NewReader(path).ReadRoster()
	require.NoError(t, err)
	assert.Equal(t, election.Roster{
		{Name: "Alpha", Votes: 10, WinProb: 1},
		{Name: "Beta", Votes: 20, WinProb: 0},
	}, roster)
}

func TestReadRoster_CSVColumnOrderAndCase(t *testing.T) {
	path := writeTempCSV(t, "WIN_PROB,Name,Votes\n0.55,Gamma,7\n")

	roster, err := NewReader(path).ReadRoster()
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Gamma", roster[0].Name)
	assert.Equal(t, 7, roster[0].Votes)
	assert.Equal(t, 0.55, roster[0].WinProb)
}

func TestReadRoster_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "votes", "win_prob"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Alpha", 10, 1.0}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Beta", 20, 0.0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	roster, err := NewReader(path).ReadRoster()
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Alpha", roster[0].Name)
	assert.Equal(t, 10, roster[0].Votes)
	assert.Equal(t, 1.0, roster[0].WinProb)
	assert.Equal(t, "Beta", roster[1].Name)
}

func TestReadRoster_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).ReadRoster()
		assert.Error(t, err)
	})

	t.Run("missing header columns", func(t *testing.T) {
		path := writeTempCSV(t, "name,weight\nAlpha,10\n")
		_, err := NewReader(path).ReadRoster()
		assert.ErrorContains(t, err, "win_prob")
	})

	t.Run("no entity rows", func(t *testing.T) {
		path := writeTempCSV(t, "name,votes,win_prob\n")
		_, err := NewReader(path).ReadRoster()
		assert.Error(t, err)
	})

	t.Run("non-numeric votes", func(t *testing.T) {
		path := writeTempCSV(t, "name,votes,win_prob\nAlpha,ten,0.5\n")
		_, err := NewReader(path).ReadRoster()
		assert.ErrorContains(t, err, "votes")
	})

	t.Run("non-numeric probability", func(t *testing.T) {
		path := writeTempCSV(t, "name,votes,win_prob\nAlpha,10,maybe\n")
		_, err := NewReader(path).ReadRoster()
		assert.ErrorContains(t, err, "win_prob")
	})
}
