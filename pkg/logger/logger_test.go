package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "<none>", MaskToken(""))
	assert.Equal(t, "***", MaskToken("short"))
	assert.Equal(t, "eyJhbGci...", MaskToken("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
}

func TestConfigureDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Configure("production")
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	Configure("development")
	defer Configure("production")
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	WithFields(map[string]interface{}{"slice": "products"}).Error("fetch failed")
	assert.Contains(t, buf.String(), "slice=products")
	assert.Contains(t, buf.String(), "fetch failed")
}
