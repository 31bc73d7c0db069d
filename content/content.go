// Package content turns a document tree into render ready input: a private
// copy of the document with every inline reference resolved plus the indexes
// renderers need.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"draftr/model"
	"draftr/state"
)

// Content is a prepared document. Doc is a private deep copy of the caller's
// document, the caller's tree is never modified.
type Content struct {
	ID         uuid.UUID
	Doc        *model.Document
	Anchors    model.AnchorIndex
	References *model.ReferenceSet
}

// Load decodes YAML document from r and prepares it.
func Load(ctx context.Context, r io.Reader, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := model.DecodeDocument(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	return Prepare(ctx, doc, log)
}

// Prepare validates the document, clones it, fills in metadata defaults,
// builds anchor and reference indexes and rewrites inline references into
// their display form.
func Prepare(ctx context.Context, doc *model.Document, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("nothing to prepare, document is nil")
	}
	env := state.EnvFromContext(ctx)

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate render ID: %w", err)
	}

	prepared := doc.Clone()
	applyDefaults(&prepared.Front, env, log)

	anchors := prepared.BuildAnchorIndex(log)
	refs := prepared.BuildReferenceSet(log)
	if err := prepared.ResolveReferences(anchors, refs, log); err != nil {
		return nil, fmt.Errorf("unable to resolve references: %w", err)
	}

	log.Debug("Document prepared",
		zap.Stringer("id", id),
		zap.Int("anchors", len(anchors)),
		zap.Int("normative", len(refs.Normative)),
		zap.Int("informative", len(refs.Informative)))

	return &Content{
		ID:         id,
		Doc:        prepared,
		Anchors:    anchors,
		References: refs,
	}, nil
}

func applyDefaults(m *model.Metadata, env *state.LocalEnv, log *zap.Logger) {
	if m.Date.IsZero() {
		now := time.Now
		if env.Now != nil {
			now = env.Now
		}
		y, mon, d := now().Date()
		m.Date = time.Date(y, mon, d, 0, 0, 0, 0, time.UTC)
		log.Debug("Document has no date, using current one", zap.Time("date", m.Date))
	}
	if len(m.Abbrev) == 0 {
		m.Abbrev = m.Title
	}
	if len(m.Workgroup) == 0 && env.Cfg != nil {
		m.Workgroup = env.Cfg.Document.Workgroup
	}
}
