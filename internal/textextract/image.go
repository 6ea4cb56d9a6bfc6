package textextract

import (
	"context"
	"fmt"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	txt, warn, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return Result{Format: constants.IMAGE, Warnings: warn}, fmt.Errorf("%v: %w", err, ErrCorrupt)
	}
	return Result{
		Text:     Normalize(txt),
		Pages:    1,
		Format:   constants.IMAGE,
		Method:   "image-ocr",
		Language: e.cfg.Language,
		Warnings: warn,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}
