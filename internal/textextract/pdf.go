package textextract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
)

// pdftotext exit codes (see poppler docs): 1 = error opening the PDF,
// 3 = PDF permissions error.
const (
	pdftotextErrOpen        = 1
	pdftotextErrPermissions = 3
)

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		return Result{Format: constants.PDF, Warnings: warns}, err
	}

	text = Normalize(text)
	if textDensity(text, pages) >= e.cfg.MinTextDensity {
		return Result{
			Text:     text,
			Pages:    pages,
			Format:   constants.PDF,
			Method:   "pdf-text",
			Language: e.cfg.Language,
			Warnings: warns,
		}, nil
	}

	// Near-empty text layer: the PDF is a scan. Rasterize and recognize.
	e.logger.Info("native text layer near empty, falling back to ocr",
		"path", path, "pages", pages, "chars", len(text))
	ocrText, ocrPages, ocrWarns, err := e.pdfToOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	if err != nil {
		return Result{Format: constants.PDF, Warnings: warns}, err
	}
	return Result{
		Text:     Normalize(ocrText),
		Pages:    ocrPages,
		Format:   constants.PDF,
		Method:   "pdf-ocr",
		Language: e.cfg.Language,
		Warnings: warns,
	}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, classifyPdftotextError(err, errb)
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "iv-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("rasterize: %w", ErrCorrupt)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered: %w", ErrCorrupt)
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return b.String(), len(matches), warns, nil
}

// textDensity counts non-whitespace runes per page.
func textDensity(text string, pages int) int {
	if pages <= 0 {
		pages = 1
	}
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n / pages
}

func classifyPdftotextError(err error, stderr []byte) error {
	msg := strings.ToLower(string(stderr))
	if strings.Contains(msg, "incorrect password") || strings.Contains(msg, "encrypted") {
		return fmt.Errorf("pdftotext: %w", ErrEncrypted)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case pdftotextErrPermissions:
			return fmt.Errorf("pdftotext: %w", ErrEncrypted)
		case pdftotextErrOpen:
			return fmt.Errorf("pdftotext: %w", ErrCorrupt)
		}
	}
	return err
}
