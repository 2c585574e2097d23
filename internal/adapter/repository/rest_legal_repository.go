package repository

import (
	"context"
	"time"

	"github.com/tidwall/gjson"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/domain/repository"
	"adminconsole/internal/infrastructure/httpclient"
	"adminconsole/pkg/logger"
	"adminconsole/pkg/response"
)

const legalPath = "legal"

type restLegalRepository struct {
	client *httpclient.Client
}

func NewRestLegalRepository(client *httpclient.Client) repository.LegalRepository {
	return &restLegalRepository{
		client: client,
	}
}

// GetAll accepts either {privacyPolicy: {...}, ...} or a list of typed documents.
// Unknown document types are skipped.
func (r *restLegalRepository) GetAll(ctx context.Context) (map[entity.DocumentType]entity.LegalDocument, error) {
	resp, err := r.client.Get(ctx, legalPath, nil)
	if err != nil {
		return nil, err
	}

	data := gjson.ParseBytes(resp.Data())
	docs := make(map[entity.DocumentType]entity.LegalDocument, len(entity.DocumentTypes))

	if data.IsArray() {
		var decodeErr error
		data.ForEach(func(_, v gjson.Result) bool {
			t, err := entity.ParseDocumentType(v.Get("type").String())
			if err != nil {
				logger.Debug("Skipping legal document: %v", err)
				return true
			}
			doc, err := decodeDocument(t, []byte(v.Raw))
			if err != nil {
				decodeErr = err
				return false
			}
			docs[t] = *doc
			return true
		})
		if decodeErr != nil {
			return nil, decodeErr
		}
		return docs, nil
	}

	for _, t := range entity.DocumentTypes {
		v := data.Get(t.String())
		if !v.IsObject() {
			continue
		}
		doc, err := decodeDocument(t, []byte(v.Raw))
		if err != nil {
			return nil, err
		}
		docs[t] = *doc
	}
	return docs, nil
}

func (r *restLegalRepository) GetByType(ctx context.Context, docType entity.DocumentType) (*entity.LegalDocument, error) {
	resp, err := r.client.Get(ctx, resourcePath(legalPath, docType.String()), nil)
	if err != nil {
		return nil, err
	}
	return decodeDocument(docType, resp.Data())
}

func (r *restLegalRepository) Update(ctx context.Context, docType entity.DocumentType, content string) (*entity.LegalDocument, error) {
	resp, err := r.client.Put(ctx, resourcePath(legalPath, docType.String()), map[string]string{
		"content": content,
	})
	if err != nil {
		return nil, err
	}
	return decodeDocument(docType, resp.Data())
}

func (r *restLegalRepository) Create(ctx context.Context, docType entity.DocumentType, content string) (*entity.LegalDocument, error) {
	resp, err := r.client.Post(ctx, legalPath, map[string]string{
		"type":    docType.String(),
		"content": content,
	})
	if err != nil {
		return nil, err
	}
	return decodeDocument(docType, resp.Data())
}

// decodeDocument reads content and lastUpdated; the type always comes from the caller.
func decodeDocument(docType entity.DocumentType, body []byte) (*entity.LegalDocument, error) {
	var raw struct {
		Content     string     `json:"content"`
		LastUpdated *time.Time `json:"lastUpdated"`
	}
	if err := response.Decode(body, &raw); err != nil {
		return nil, err
	}
	return &entity.LegalDocument{
		Type:        docType,
		Content:     raw.Content,
		LastUpdated: raw.LastUpdated,
	}, nil
}
