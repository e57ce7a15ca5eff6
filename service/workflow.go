package service

import (
	"context"
	"fmt"
	"time"

	"github.com/contractgpt/backend/model"
	"github.com/contractgpt/backend/pkg/logger"
)

// RecordStore inserts contract metadata rows
type RecordStore interface {
	Create(record *model.ContractRecord) error
}

// Workflow runs one contract generation end to end:
// validate -> build prompt -> complete -> classify -> render -> persist.
// Steps run sequentially; any failure aborts the run with a taxonomy error.
// The caller's context cancels the in-flight completion.
type Workflow struct {
	validator *Validator
	completer Completer
	renderer  Renderer
	blobs     BlobStore
	records   RecordStore
	now       func() time.Time
}

func NewWorkflow(validator *Validator, completer Completer, renderer Renderer, blobs BlobStore, records RecordStore) *Workflow {
	return &Workflow{
		validator: validator,
		completer: completer,
		renderer:  renderer,
		blobs:     blobs,
		records:   records,
		now:       time.Now,
	}
}

// Run generates, renders, and persists one contract for the given owner.
// The returned record carries the signed artifact link, not the blob.
func (w *Workflow) Run(ctx context.Context, ownerID uint, req *model.ContractRequest, onChunk func(string)) (*model.ContractRecord, error) {
	if err := w.validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)

	content, err := w.completer.Complete(ctx, []Message{{Role: "user", Content: prompt}}, onChunk)
	if err != nil {
		return nil, err
	}

	// The output filter guards against off-domain completions; filtered text
	// is discarded, never shown or saved
	if err := w.validator.ClassifyOutput(content); err != nil {
		return nil, err
	}

	pdfBytes, pageCount, err := w.renderer.Render(req.Type, content)
	if err != nil {
		return nil, fmt.Errorf("failed to render contract: %w", err)
	}

	record, err := w.persist(ctx, ownerID, req, content, pdfBytes)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "contract generated",
		"user_id", ownerID,
		"type", req.Type,
		"pages", pageCount,
		"record_id", record.ID,
	)

	return record, nil
}

// persist uploads the artifact and then inserts the metadata row. Upload
// strictly precedes the insert so a record never references a missing blob.
// An insert failure after a successful upload leaves the blob behind; this
// inconsistency window is reported, not rolled back.
func (w *Workflow) persist(ctx context.Context, ownerID uint, req *model.ContractRequest, content string, pdfBytes []byte) (*model.ContractRecord, error) {
	if err := w.blobs.EnsureBucket(ctx); err != nil {
		return nil, &model.PersistenceError{Stage: model.StageBucket, Err: err}
	}

	objectName := ObjectName(ownerID, req.Type, w.now())
	if err := w.blobs.UploadPDF(ctx, objectName, pdfBytes); err != nil {
		return nil, &model.PersistenceError{Stage: model.StageUpload, Err: err}
	}

	fileURL, err := w.blobs.GetPresignedURL(ctx, objectName)
	if err != nil {
		return nil, &model.PersistenceError{Stage: model.StageSign, Err: err}
	}

	record := &model.ContractRecord{
		UserID:  ownerID,
		Name:    fmt.Sprintf("%s Contract - %s", req.Type, req.Name),
		Type:    req.Type,
		Content: content,
		FileURL: fileURL,
	}
	if err := w.records.Create(record); err != nil {
		logger.Warn(ctx, "metadata insert failed after upload; blob orphaned",
			"object", objectName,
			"error", err,
		)
		return nil, &model.PersistenceError{Stage: model.StageInsert, Err: err}
	}

	return record, nil
}
