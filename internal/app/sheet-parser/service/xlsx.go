package sheet_parser_service

import (
	"bytes"
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readXlsxGrid returns the first sheet as a rectangular grid with merged
// ranges filled with their top-left value.
func readXlsxGrid(file []byte) (string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	grid, err := getFilledGrid(f, sheet)
	if err != nil {
		return "", nil, err
	}
	return sheet, grid, nil
}

func getFilledGrid(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	maxCol := 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}

	grid := make([][]string, len(rows))
	for i := range grid {
		grid[i] = make([]string, maxCol)
		for j, cell := range rows[i] {
			grid[i][j] = strings.TrimSpace(cell)
		}
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		val := strings.TrimSpace(merge.GetCellValue())
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			continue
		}
		for r := startRow - 1; r < endRow && r < len(grid); r++ {
			for c := startCol - 1; c < endCol && c < len(grid[r]); c++ {
				grid[r][c] = val
			}
		}
	}

	return grid, nil
}
