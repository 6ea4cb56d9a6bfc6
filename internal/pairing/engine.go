// Package pairing links each order with its counterpart certificate.
// Matching runs on normalized plate first, case number as fallback; the
// claim itself is delegated to the repository's conditional update so a
// candidate can only ever be won once.
package pairing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/patriciodunstan/back-investigacion-vehiculos/constants"
	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/fields"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

type Engine struct {
	docs   repository.DocumentRepository
	window time.Duration
	logger *slog.Logger
}

func NewEngine(docs repository.DocumentRepository, window time.Duration, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &Engine{docs: docs, window: window, logger: logger}
}

// Pair tries to find and claim a counterpart for doc, which must be in
// EXTRACTED state. It returns the claimed counterpart id, or nil when the
// document was parked AWAITING_PAIR.
func (e *Engine) Pair(ctx context.Context, doc *ent.ProcessedDocument) (*uuid.UUID, error) {
	ext, err := fields.Decode(doc.ExtractedFields)
	if err != nil {
		return nil, fmt.Errorf("decode extracted fields for %s: %w", doc.ID, err)
	}
	if ext.PairKeyPlate() == "" && ext.PairKeyCaseNumber() == "" {
		// nothing to match on; wait for an operator or the counterpart
		e.logger.Warn("document has no pairing key, parking", "doc_id", doc.ID)
		return nil, e.docs.ParkAwaitingPair(ctx, doc.ID)
	}

	complement := constants.DocType(doc.DocType).Complement()
	if complement == constants.DocTypeUnknown {
		return nil, fmt.Errorf("document %s has no pairable type %q", doc.ID, doc.DocType)
	}

	since := doc.CreatedAt.Add(-e.window)
	until := doc.CreatedAt.Add(e.window)
	candidates, err := e.docs.FindPairCandidates(ctx, doc.FolderID, complement, since, until)
	if err != nil {
		return nil, fmt.Errorf("find pair candidates: %w", err)
	}

	matched := e.filterByKey(ext, candidates)
	orderByAffinity(matched, doc.CreatedAt)

	for _, cand := range matched {
		won, err := e.docs.ClaimPair(ctx, doc.ID, cand.ID)
		if err != nil {
			return nil, fmt.Errorf("claim pair %s: %w", cand.ID, err)
		}
		if won {
			e.logger.Info("pair claimed",
				"doc_id", doc.ID,
				"counterpart_id", cand.ID,
				"doc_type", doc.DocType,
			)
			id := cand.ID
			return &id, nil
		}
		// another worker claimed this candidate first; try the next one
		e.logger.Debug("lost pair claim, trying next candidate", "doc_id", doc.ID, "candidate_id", cand.ID)
	}

	e.logger.Info("no counterpart available, parking", "doc_id", doc.ID, "candidates_seen", len(candidates))
	return nil, e.docs.ParkAwaitingPair(ctx, doc.ID)
}

func (e *Engine) filterByKey(ext fields.Extracted, candidates []*ent.ProcessedDocument) []*ent.ProcessedDocument {
	var out []*ent.ProcessedDocument
	for _, cand := range candidates {
		cext, err := fields.Decode(cand.ExtractedFields)
		if err != nil {
			e.logger.Warn("skipping candidate with undecodable fields", "candidate_id", cand.ID, "error", err)
			continue
		}
		if keysMatch(ext, cext) {
			out = append(out, cand)
		}
	}
	return out
}

// keysMatch compares two documents' pairing keys: plates when both sides
// carry one, case numbers otherwise.
func keysMatch(a, b fields.Extracted) bool {
	pa, pb := a.PairKeyPlate(), b.PairKeyPlate()
	if pa != "" && pb != "" {
		return pa == pb
	}
	ca, cb := a.PairKeyCaseNumber(), b.PairKeyCaseNumber()
	return ca != "" && ca == cb
}

// orderByAffinity sorts candidates by creation-time distance to the
// document being paired; ids are time-ordered (v7), so a timestamp tie
// goes to the earliest ingested candidate.
func orderByAffinity(cands []*ent.ProcessedDocument, ref time.Time) {
	sort.SliceStable(cands, func(i, j int) bool {
		di := absDuration(cands[i].CreatedAt.Sub(ref))
		dj := absDuration(cands[j].CreatedAt.Sub(ref))
		if di != dj {
			return di < dj
		}
		return cands[i].ID.String() < cands[j].ID.String()
	})
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
