package slice

import (
	"context"
	"fmt"
	"time"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	apperrors "adminconsole/pkg/errors"
)

// LegalDocumentState is one legal document with its own lifecycle.
type LegalDocumentState struct {
	Content     string
	LastUpdated *time.Time
	Task        Task
}

// LegalState is a snapshot of the legal slice.
type LegalState struct {
	Documents [len(entity.DocumentTypes)]LegalDocumentState
	// Task tracks fetching all documents at once.
	Task Task
}

// Document returns the state of document t.
func (s LegalState) Document(t entity.DocumentType) LegalDocumentState {
	if !t.Valid() {
		return LegalDocumentState{}
	}
	return s.Documents[t]
}

// LegalSlice holds the four singleton legal documents. Each document has its
// own lifecycle so edits to different documents never interfere.
type LegalSlice struct {
	base
	repo repository.LegalRepository
	docs [len(entity.DocumentTypes)]LegalDocumentState
}

// NewLegalSlice creates a legal slice with every document empty.
func NewLegalSlice(repo repository.LegalRepository, notifier Notifier) *LegalSlice {
	s := &LegalSlice{repo: repo}
	s.init("legal", notifier)
	return s
}

// Reset returns every document to its initial state.
func (s *LegalSlice) Reset() {
	s.update(func() {
		s.docs = [len(entity.DocumentTypes)]LegalDocumentState{}
		s.task = Task{}
	})
}

// State returns a copy of the current legal state.
func (s *LegalSlice) State() LegalState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := LegalState{Task: s.task}
	for i, d := range s.docs {
		d.LastUpdated = copyPtr(d.LastUpdated)
		state.Documents[i] = d
	}
	return state
}

// FetchLegalContent loads every document; types missing from the response keep their current state.
func (s *LegalSlice) FetchLegalContent(ctx context.Context) error {
	_, err := run(ctx, &s.base, "Failed to fetch legal content",
		func(ctx context.Context) (map[entity.DocumentType]entity.LegalDocument, error) {
			return s.repo.GetAll(ctx)
		},
		func(docs map[entity.DocumentType]entity.LegalDocument) {
			for t, doc := range docs {
				if !t.Valid() {
					continue
				}
				s.docs[t].Content = doc.Content
				s.docs[t].LastUpdated = copyPtr(doc.LastUpdated)
			}
		})
	return err
}

// FetchLegalByType loads document t.
func (s *LegalSlice) FetchLegalByType(ctx context.Context, t entity.DocumentType) (*entity.LegalDocument, error) {
	return s.runDocument(ctx, t, "Failed to fetch legal content",
		func(ctx context.Context) (*entity.LegalDocument, error) {
			return s.repo.GetByType(ctx, t)
		})
}

// UpdateLegalContent saves one document and patches only its content and timestamp.
func (s *LegalSlice) UpdateLegalContent(ctx context.Context, t entity.DocumentType, content string) (*entity.LegalDocument, error) {
	return s.runDocument(ctx, t, "Failed to update legal content",
		func(ctx context.Context) (*entity.LegalDocument, error) {
			return s.repo.Update(ctx, t, content)
		})
}

// CreateLegalContent creates document t with content.
func (s *LegalSlice) CreateLegalContent(ctx context.Context, t entity.DocumentType, content string) (*entity.LegalDocument, error) {
	return s.runDocument(ctx, t, "Failed to create legal content",
		func(ctx context.Context) (*entity.LegalDocument, error) {
			return s.repo.Create(ctx, t, content)
		})
}

// SetLegalContent edits a document locally without saving it.
func (s *LegalSlice) SetLegalContent(t entity.DocumentType, content string) {
	if !t.Valid() {
		return
	}
	s.update(func() { s.docs[t].Content = content })
}

// ClearLegalErrors drops the global error and every per-document error.
func (s *LegalSlice) ClearLegalErrors() {
	s.update(func() {
		if s.task.Status == Failed {
			s.task = Task{}
		}
		for i := range s.docs {
			if s.docs[i].Task.Status == Failed {
				s.docs[i].Task = Task{}
			}
		}
	})
}

func (s *LegalSlice) runDocument(ctx context.Context, t entity.DocumentType, fallback string, call func(context.Context) (*entity.LegalDocument, error)) (*entity.LegalDocument, error) {
	if !t.Valid() {
		err := apperrors.Validation(fmt.Sprintf("Unknown legal document type %d", int(t)), nil)
		s.notifier.Error(err.Message)
		return nil, err
	}

	s.update(func() { s.docs[t].Task = pendingTask() })

	doc, err := call(ctx)
	if err != nil {
		task := failedTask(err, fallback)
		s.update(func() { s.docs[t].Task = task })
		s.notifier.Error(task.Message)
		return nil, err
	}

	s.update(func() {
		s.docs[t].Content = doc.Content
		s.docs[t].LastUpdated = copyPtr(doc.LastUpdated)
		s.docs[t].Task = succeededTask()
	})
	return doc, nil
}
