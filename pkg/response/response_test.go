package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "adminconsole/pkg/errors"
)

func TestData(t *testing.T) {
	assert.JSONEq(t, `{"products":[]}`, string(Data([]byte(`{"success":true,"data":{"products":[]}}`))))
	assert.JSONEq(t, `{"products":[]}`, string(Data([]byte(`{"products":[]}`))))
	assert.Equal(t, "not json", string(Data([]byte("not json"))))
}

func TestField(t *testing.T) {
	assert.JSONEq(t, `{"_id":"p1"}`, string(Field([]byte(`{"success":true,"data":{"product":{"_id":"p1"}}}`), "product")))
	// Bare entity.
	assert.JSONEq(t, `{"_id":"p1"}`, string(Field([]byte(`{"success":true,"data":{"_id":"p1"}}`), "product")))
}

func TestItemsAndTotal(t *testing.T) {
	body := []byte(`{"success":true,"data":{"orders":[{"_id":"o1"},{"_id":"o2"}],"pagination":{"total":42}}}`)
	assert.JSONEq(t, `[{"_id":"o1"},{"_id":"o2"}]`, string(Items(body, "orders")))
	assert.Equal(t, 42, Total(body, 2))

	bare := []byte(`{"success":true,"data":[{"_id":"u1"}]}`)
	assert.JSONEq(t, `[{"_id":"u1"}]`, string(Items(bare, "users")))
	assert.Equal(t, 1, Total(bare, 1))

	assert.Equal(t, "[]", string(Items([]byte(`{"success":true,"data":{}}`), "banners")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid email or password", ErrorMessage([]byte(`{"success":false,"message":"Invalid email or password"}`)))
	assert.Equal(t, "nested", ErrorMessage([]byte(`{"error":{"message":"nested"}}`)))
	assert.Equal(t, "flat", ErrorMessage([]byte(`{"error":"flat"}`)))
	assert.Equal(t, "", ErrorMessage([]byte(`<html>`)))
}

func TestDecode(t *testing.T) {
	var v struct{ Name string }
	err := Decode([]byte("{"), &v)
	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
}

func TestSuccess(t *testing.T) {
	// Setup
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Assertions
	if assert.NoError(t, Success(c, map[string]string{"status": "ok"})) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"status":"ok"}`, string(Data(rec.Body.Bytes())))
	}
}

func TestError(t *testing.T) {
	// Setup
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	// Assertions
	if assert.NoError(t, Error(c, apperrors.Conflict("Category already exists"))) {
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Category already exists", ErrorMessage(rec.Body.Bytes()))
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if assert.NoError(t, Error(c, errors.New("boom"))) {
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An unexpected error occurred", ErrorMessage(rec.Body.Bytes()))
	}
}
