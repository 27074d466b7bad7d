package sheet_parser_service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// XlsConverter turns a legacy .xls workbook into .xlsx bytes.
type XlsConverter interface {
	ConvertToXlsx(ctx context.Context, file []byte) ([]byte, error)
}

// LibreOfficeConverter shells out to a headless LibreOffice.
type LibreOfficeConverter struct {
	Binary string
}

func (c LibreOfficeConverter) ConvertToXlsx(ctx context.Context, file []byte) ([]byte, error) {
	bin := c.Binary
	if bin == "" {
		bin = "libreoffice"
	}

	dir, err := os.MkdirTemp("", "column-mapper-xls-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "upload.xls")
	if err := os.WriteFile(inputPath, file, 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin, "--headless", "--convert-to", "xlsx", inputPath, "--outdir", dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("libreoffice conversion failed: %w: %s", err, out)
	}

	return os.ReadFile(filepath.Join(dir, "upload.xlsx"))
}
