package sheet_parser_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/nova/errs"
)

var ErrUnsupportedFile = errors.New("unsupported file type, expected .csv, .xlsx or .xls")

type SheetParserService struct {
	log       *slog.Logger
	converter XlsConverter
}

var _ app.SheetParserService = &SheetParserService{}

func New(log *slog.Logger) *SheetParserService {
	return &SheetParserService{log: log, converter: LibreOfficeConverter{}}
}

// Parse reads the first sheet of the file. Row 1 is the header row; columns
// with an empty header are dropped and fully empty data rows are skipped.
func (this *SheetParserService) Parse(ctx context.Context, filename string, file []byte) (*app.ParseSheetResult, errs.Error) {
	res, err := this.parse(ctx, filename, file)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	return res, nil
}

func (this *SheetParserService) parse(ctx context.Context, filename string, file []byte) (*app.ParseSheetResult, error) {
	var (
		grid  [][]string
		sheet string
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		sheet = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		grid, err = readCsvGrid(file)
	case ".xlsx", ".xlsm":
		sheet, grid, err = readXlsxGrid(file)
	case ".xls":
		var converted []byte
		converted, err = this.converter.ConvertToXlsx(ctx, file)
		if err == nil {
			sheet, grid, err = readXlsxGrid(converted)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	res, err := buildResult(sheet, grid)
	if err != nil {
		return nil, err
	}

	this.log.Info("sheet parsed",
		"file", filename,
		"sheet", sheet,
		"headers", len(res.Header),
		"rows", len(res.Rows))
	return res, nil
}

func buildResult(sheet string, grid [][]string) (*app.ParseSheetResult, error) {
	if len(grid) == 0 {
		return nil, app.ErrNoHeaders
	}

	var (
		header  []string
		columns []int
	)
	for c, cell := range grid[0] {
		if h := strings.TrimSpace(cell); h != "" {
			header = append(header, h)
			columns = append(columns, c)
		}
	}
	if len(header) == 0 {
		return nil, app.ErrNoHeaders
	}

	rows := make([][]string, 0, len(grid)-1)
	for _, src := range grid[1:] {
		row := make([]string, len(columns))
		empty := true
		for i, c := range columns {
			if c < len(src) {
				row[i] = strings.TrimSpace(src[c])
			}
			if row[i] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	return &app.ParseSheetResult{
		SheetName: sheet,
		Header:    header,
		Rows:      rows,
	}, nil
}
