package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	sourceRange, targetRange, sheetName, outputPath = "", "", "", ""
	listsPath, locale, reportPath = "", "", ""
	pretty, verbose = false, false

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFillCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.xlsx")
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellValue("Sheet1", "A2", 3)
	f.SetCellValue("Sheet1", "B1", "Jan")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	listFile := filepath.Join(dir, "lists.txt")
	require.NoError(t, os.WriteFile(listFile, []byte("low\nmid\nhigh\n"), 0644))

	outPath := filepath.Join(dir, "out.xlsx")
	out, err := execute(t, "fill", input, "--source", "A1:B2", "--target", "A1:B4",
		"--output", outPath, "--report", "-", "--lists", listFile)
	require.NoError(t, err)

	var report models.FillReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Sheet1", report.Sheet)
	assert.Equal(t, 4, report.CellsWritten())

	f2, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f2.Close()
	for cell, want := range map[string]string{"A3": "5", "A4": "7", "B2": "", "B3": "Jan"} {
		got, err := f2.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}

func TestFillCommandErrors(t *testing.T) {
	_, err := execute(t, "fill", filepath.Join(t.TempDir(), "missing.xlsx"), "--source", "A1")
	assert.ErrorContains(t, err, "file not found")

	input := filepath.Join(t.TempDir(), "in.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	_, err = execute(t, "fill", input, "--source", "A1:", "--target", "A1:A3")
	assert.Error(t, err)

	_, err = execute(t, "fill", input, "--source", "A1", "--target", "A1:A3", "--sheet", "Nope")
	assert.Error(t, err)
}

func TestListsCommand(t *testing.T) {
	out, err := execute(t, "lists", "--locale", "de-AT")
	require.NoError(t, err)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "de-AT", view["locale"])
	assert.Contains(t, view["months"], "März")

	_, err = execute(t, "lists", "--locale", "!!")
	assert.Error(t, err)
}
