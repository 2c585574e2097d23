package slice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/domain/entity"
	apperrors "adminconsole/pkg/errors"
)

func TestFetchLegalContent(t *testing.T) {
	h := signedIn(t)
	legal := h.store.Legal

	require.NoError(t, legal.FetchLegalContent(context.Background()))

	state := legal.State()
	assert.Equal(t, Succeeded, state.Task.Status)
	for _, dt := range entity.DocumentTypes {
		doc := state.Document(dt)
		assert.Equal(t, "<p>"+dt.String()+"</p>", doc.Content)
		assert.NotNil(t, doc.LastUpdated)
	}
}

func TestLegalDocumentsAreIsolated(t *testing.T) {
	h := signedIn(t)
	legal := h.store.Legal
	ctx := context.Background()

	require.NoError(t, legal.FetchLegalContent(ctx))
	before := legal.State()

	h.api.FailNext(500, "Storage offline")
	_, err := legal.UpdateLegalContent(ctx, entity.CookiePolicy, "<p>cookies v2</p>")
	assert.Error(t, err)

	state := legal.State()
	assert.Equal(t, "Storage offline", state.Document(entity.CookiePolicy).Task.Error())
	assert.Equal(t, before.Document(entity.CookiePolicy).Content, state.Document(entity.CookiePolicy).Content)
	for _, dt := range []entity.DocumentType{entity.PrivacyPolicy, entity.TermsOfService, entity.AboutUs} {
		assert.Equal(t, Idle, state.Document(dt).Task.Status, dt.String())
	}
	assert.Equal(t, Succeeded, state.Task.Status)

	doc, err := legal.UpdateLegalContent(ctx, entity.TermsOfService, "<p>terms v2</p>")
	require.NoError(t, err)

	state = legal.State()
	assert.Equal(t, "<p>terms v2</p>", state.Document(entity.TermsOfService).Content)
	assert.Equal(t, doc.LastUpdated.Unix(), state.Document(entity.TermsOfService).LastUpdated.Unix())
	assert.Equal(t, before.Document(entity.PrivacyPolicy), state.Document(entity.PrivacyPolicy))
	assert.Equal(t, Failed, state.Document(entity.CookiePolicy).Task.Status)

	legal.ClearLegalErrors()
	assert.Equal(t, Idle, legal.State().Document(entity.CookiePolicy).Task.Status)
}

func TestCreateAndFetchLegalByType(t *testing.T) {
	h := signedIn(t)
	legal := h.store.Legal
	ctx := context.Background()

	_, err := legal.CreateLegalContent(ctx, entity.AboutUs, "<p>We sell things.</p>")
	require.NoError(t, err)

	doc, err := legal.FetchLegalByType(ctx, entity.AboutUs)
	require.NoError(t, err)
	assert.Equal(t, "<p>We sell things.</p>", doc.Content)
	assert.Equal(t, "<p>We sell things.</p>", legal.State().Document(entity.AboutUs).Content)
}

func TestSetLegalContentIsLocal(t *testing.T) {
	h := signedIn(t)
	legal := h.store.Legal

	legal.SetLegalContent(entity.PrivacyPolicy, "<p>draft</p>")
	assert.Equal(t, "<p>draft</p>", legal.State().Document(entity.PrivacyPolicy).Content)
	assert.Equal(t, 0, h.api.RequestCount())

	legal.SetLegalContent(entity.DocumentType(9), "ignored")
	assert.Equal(t, LegalDocumentState{}, legal.State().Document(entity.DocumentType(9)))
}

func TestUnknownLegalDocumentType(t *testing.T) {
	h := signedIn(t)

	_, err := h.store.Legal.UpdateLegalContent(context.Background(), entity.DocumentType(7), "x")
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	assert.Equal(t, 0, h.api.RequestCount())
}
