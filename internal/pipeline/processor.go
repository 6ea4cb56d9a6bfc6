// Package pipeline drives a document through its processing stages:
// text extraction, classification, field extraction, pairing and case
// assembly. Each stage persists its outcome before the next one starts,
// so a crashed worker resumes exactly where the document stopped.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/classify"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/fields"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/textextract"
)

// TextExtractor yields the raw text of a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (textextract.Result, error)
}

// Pairer finds and claims the counterpart document; nil id means parked.
type Pairer interface {
	Pair(ctx context.Context, doc *ent.ProcessedDocument) (*uuid.UUID, error)
}

// Assembler turns a paired order and certificate into a case.
type Assembler interface {
	Assemble(ctx context.Context, order, cert *ent.ProcessedDocument) (*ent.InvestigationCase, error)
}

type Config struct {
	StorageDir     string
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type Processor struct {
	cfg       Config
	docs      repository.DocumentRepository
	extractor TextExtractor
	pairer    Pairer
	assembler Assembler
	logger    *slog.Logger
}

func NewProcessor(cfg Config, docs repository.DocumentRepository, extractor TextExtractor, pairer Pairer, assembler Assembler, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 30 * time.Second
	}
	return &Processor{cfg: cfg, docs: docs, extractor: extractor, pairer: pairer, assembler: assembler, logger: logger}
}

// errStructural marks failures that retrying cannot fix.
type errStructural struct{ err error }

func (e errStructural) Error() string { return e.err.Error() }
func (e errStructural) Unwrap() error { return e.err }

func structural(err error) error { return errStructural{err: err} }

func isStructural(err error) bool {
	var se errStructural
	if errors.As(err, &se) {
		return true
	}
	return errors.Is(err, textextract.ErrCorrupt) ||
		errors.Is(err, textextract.ErrEncrypted) ||
		errors.Is(err, textextract.ErrUnsupported)
}

// Process advances the document as far as it can go right now. A document
// that parks AWAITING_PAIR or is held as UNKNOWN stops without error; any
// stage failure is recorded on the row (retry schedule or terminal ERROR).
func (p *Processor) Process(ctx context.Context, docID uuid.UUID) error {
	doc, err := p.docs.GetByID(ctx, docID)
	if err != nil {
		return fmt.Errorf("load document %s: %w", docID, err)
	}

	for {
		var advanced bool
		switch constants.DocState(doc.State) {
		case constants.StateUploaded:
			err = p.classifyStage(ctx, doc)
			advanced = err == nil
		case constants.StateClassified:
			if constants.DocType(doc.DocType) == constants.DocTypeUnknown {
				// held for operator review, not an error
				p.logger.Info("document classified UNKNOWN, holding", "doc_id", doc.ID, "filename", doc.Filename)
				return nil
			}
			err = p.fieldsStage(ctx, doc)
			advanced = err == nil
		case constants.StateExtracted:
			var pairID *uuid.UUID
			pairID, err = p.pairer.Pair(ctx, doc)
			if err == nil && pairID == nil {
				// parked AWAITING_PAIR until the counterpart arrives
				return nil
			}
			advanced = err == nil
		case constants.StatePaired, constants.StateAssembling:
			// ASSEMBLING here means a transient assembly failure was
			// rescheduled; the case-number short-circuit keeps a second
			// attempt safe
			err = p.assembleStage(ctx, doc)
			if err == nil {
				return nil
			}
		default:
			// AWAITING_PAIR or terminal
			return nil
		}

		if err != nil {
			return p.fail(ctx, doc, err)
		}
		if !advanced {
			return nil
		}
		doc, err = p.docs.GetByID(ctx, docID)
		if err != nil {
			return fmt.Errorf("reload document %s: %w", docID, err)
		}
	}
}

func (p *Processor) classifyStage(ctx context.Context, doc *ent.ProcessedDocument) error {
	path := filepath.Join(p.cfg.StorageDir, doc.StorageRef)
	res, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	docType := classify.Classify(doc.Filename, res.Text)
	p.logger.Info("document classified",
		"doc_id", doc.ID,
		"doc_type", docType,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
	)
	return p.docs.SetClassified(ctx, doc.ID, docType, res.Text)
}

func (p *Processor) fieldsStage(ctx context.Context, doc *ent.ProcessedDocument) error {
	var text string
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}
	ext, ok := fields.Extract(constants.DocType(doc.DocType), text)
	if !ok {
		return structural(fmt.Errorf("no field extractor for type %q", doc.DocType))
	}
	return p.docs.SetExtracted(ctx, doc.ID, ext.Marshal())
}

// assembleStage moves both halves of the pair to ASSEMBLING and builds
// the case. Assembly marks the documents COMPLETED itself.
func (p *Processor) assembleStage(ctx context.Context, doc *ent.ProcessedDocument) error {
	if doc.PairID == nil {
		return structural(fmt.Errorf("document %s is PAIRED without a pair id", doc.ID))
	}
	counterpart, err := p.docs.GetByID(ctx, *doc.PairID)
	if err != nil {
		return fmt.Errorf("load counterpart %s: %w", *doc.PairID, err)
	}

	order, cert := doc, counterpart
	if constants.DocType(doc.DocType) == constants.DocTypeCertificate {
		order, cert = counterpart, doc
	}
	if constants.DocType(order.DocType) != constants.DocTypeOrder ||
		constants.DocType(cert.DocType) != constants.DocTypeCertificate {
		return structural(fmt.Errorf("pair %s/%s is not an order/certificate pair", doc.ID, counterpart.ID))
	}

	// a half already in ASSEMBLING was moved by an earlier attempt
	for _, d := range []*ent.ProcessedDocument{doc, counterpart} {
		if constants.DocState(d.State) != constants.StatePaired {
			continue
		}
		if err := p.docs.Transition(ctx, d.ID, constants.StatePaired, constants.StateAssembling); err != nil {
			return err
		}
	}

	row, err := p.assembler.Assemble(ctx, order, cert)
	if err != nil {
		return err
	}
	p.logger.Info("case assembled", "case_id", row.ID, "case_number", row.CaseNumber)
	return nil
}

// fail records the stage failure: structural problems go straight to
// ERROR, transient ones are rescheduled with exponential backoff until
// retries are exhausted.
func (p *Processor) fail(ctx context.Context, doc *ent.ProcessedDocument, cause error) error {
	if isStructural(cause) {
		p.logger.Error("structural failure, not retrying", "doc_id", doc.ID, "state", doc.State, "error", cause)
		if err := p.docs.MarkError(ctx, doc.ID, cause.Error()); err != nil {
			return err
		}
		return cause
	}

	next := doc.RetryCount + 1
	if next > p.cfg.MaxRetries {
		p.logger.Error("retries exhausted", "doc_id", doc.ID, "retries", doc.RetryCount, "error", cause)
		if err := p.docs.MarkError(ctx, doc.ID, cause.Error()); err != nil {
			return err
		}
		return cause
	}

	delay := p.cfg.RetryBaseDelay << (next - 1)
	at := time.Now().Add(delay)
	p.logger.Warn("stage failed, retry scheduled",
		"doc_id", doc.ID,
		"state", doc.State,
		"attempt", next,
		"next_attempt_at", at,
		"error", cause,
	)
	if err := p.docs.ScheduleRetry(ctx, doc.ID, next, at, cause.Error()); err != nil {
		return err
	}
	return cause
}
