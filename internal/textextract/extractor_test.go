package textextract

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner dispatches on the binary name so each tool can be scripted
// per test.
type fakeRunner struct {
	handlers map[string]func(args []string) (stdout, stderr []byte, err error)
	calls    []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	h, ok := f.handlers[name]
	if !ok {
		return nil, nil, errors.New("unexpected command " + name)
	}
	return h(args)
}

func newFakeExtractor(t *testing.T, handlers map[string]func([]string) ([]byte, []byte, error)) (*Extractor, *fakeRunner) {
	t.Helper()
	e := NewExtractor(Config{}, nil)
	r := &fakeRunner{handlers: handlers}
	e.runner = r
	return e, r
}

func TestExtractAcceptsDenseNativeTextLayer(t *testing.T) {
	native := strings.Repeat("texto del oficio judicial legible ", 30) + "\f" +
		strings.Repeat("segunda pagina con texto nativo ", 30)
	e, r := newFakeExtractor(t, map[string]func([]string) ([]byte, []byte, error){
		"pdftotext": func([]string) ([]byte, []byte, error) { return []byte(native), nil, nil },
	})

	res, err := e.Extract(context.Background(), "/data/ab/oficio.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "texto del oficio")
	// OCR was never needed
	assert.Equal(t, []string{"pdftotext"}, r.calls)
}

func TestExtractFallsBackToOCRForScannedPDF(t *testing.T) {
	var tesseractCall int
	e, r := newFakeExtractor(t, map[string]func([]string) ([]byte, []byte, error){
		// scanned document: the text layer is effectively empty
		"pdftotext": func([]string) ([]byte, []byte, error) { return []byte("  \n \n"), nil, nil },
		"pdftoppm": func(args []string) ([]byte, []byte, error) {
			prefix := args[len(args)-1]
			for _, name := range []string{prefix + "-1.png", prefix + "-2.png"} {
				if err := os.WriteFile(name, []byte("png"), 0o644); err != nil {
					return nil, nil, err
				}
			}
			return nil, nil, nil
		},
		"tesseract": func([]string) ([]byte, []byte, error) {
			tesseractCall++
			if tesseractCall == 1 {
				return []byte("JUZGADO DE GARANTIA pagina uno"), nil, nil
			}
			return []byte("pagina dos"), nil, nil
		},
	})

	res, err := e.Extract(context.Background(), "/data/ab/escaneo.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "pagina uno")
	assert.Contains(t, res.Text, "pagina dos")
	assert.Equal(t, []string{"pdftotext", "pdftoppm", "tesseract", "tesseract"}, r.calls)
}

func TestExtractReportsEncryptedPDF(t *testing.T) {
	e, _ := newFakeExtractor(t, map[string]func([]string) ([]byte, []byte, error){
		"pdftotext": func([]string) ([]byte, []byte, error) {
			return nil, []byte("Command Line Error: Incorrect password"), errors.New("exit status 1")
		},
	})

	_, err := e.Extract(context.Background(), "/data/ab/protegido.pdf")
	assert.ErrorIs(t, err, ErrEncrypted)
}

func TestExtractImageGoesStraightToOCR(t *testing.T) {
	e, r := newFakeExtractor(t, map[string]func([]string) ([]byte, []byte, error){
		"tesseract": func(args []string) ([]byte, []byte, error) {
			// tesseract <file> stdout -l <lang>
			assert.Equal(t, "stdout", args[1])
			assert.Equal(t, "spa", args[3])
			return []byte("CERTIFICADO DE ANOTACIONES VIGENTES"), nil, nil
		},
	})

	res, err := e.Extract(context.Background(), "/data/ab/cav.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "CERTIFICADO")
	assert.Equal(t, []string{"tesseract"}, r.calls)
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	e, _ := newFakeExtractor(t, nil)
	_, err := e.Extract(context.Background(), "/data/ab/minuta.docx")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNormalizeCollapsesScanNoise(t *testing.T) {
	in := "JUZGADO\tDE   GARANTIA\r\n\r\n\r\n\r\nRUT  12.345.678-5   \r\n"
	out := Normalize(in)
	assert.Equal(t, "JUZGADO DE GARANTIA\n\nRUT 12.345.678-5", out)
}
