package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/testutil/fakeapi"
	"adminconsole/pkg/config"
)

func newTestApp(t *testing.T, api *fakeapi.Server, tokenFile string) (*app, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a, err := newApp(&config.Config{
		APIBaseURL:     api.URL(),
		APITimeout:     2 * time.Second,
		TokenFile:      tokenFile,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		AdminEmail:     fakeapi.AdminEmail,
		AdminPassword:  fakeapi.AdminPassword,
	}, out)
	require.NoError(t, err)
	return a, out
}

func TestLoginPersistsSessionAcrossRuns(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	tokenFile := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	a, out := newTestApp(t, api, tokenFile)
	require.NoError(t, a.run(ctx, []string{"login"}))
	a.flushNotifications()
	assert.Contains(t, out.String(), "Signed in as admin")
	assert.Contains(t, out.String(), "[success] Login successful!")

	// A second process picks the token up from disk.
	b, out := newTestApp(t, api, tokenFile)
	require.NoError(t, b.run(ctx, []string{"profile"}))
	assert.Contains(t, out.String(), fakeapi.AdminEmail)
	assert.Contains(t, out.String(), "Session expires")

	require.NoError(t, b.run(ctx, []string{"logout"}))
	c, _ := newTestApp(t, api, tokenFile)
	assert.Error(t, c.run(ctx, []string{"products"}))
}

func TestLoginWithTokenOnlyResponse(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	api.LoginWithoutUser()

	a, out := newTestApp(t, api, filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, a.run(context.Background(), []string{"login"}))
	assert.Contains(t, out.String(), "Signed in as admin <"+fakeapi.AdminEmail+">")
}

func TestListingCommands(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	ctx := context.Background()

	a, out := newTestApp(t, api, filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, a.session.Set(api.IssueToken()))

	require.NoError(t, a.run(ctx, []string{"products", "-status", "active"}))
	assert.Contains(t, out.String(), "Headphones")
	assert.NotContains(t, out.String(), "Novel")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"users", "-role", "customer"}))
	assert.Contains(t, out.String(), "jane")
	assert.Contains(t, out.String(), "1 of 2 users")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"dashboard"}))
	assert.Contains(t, out.String(), "Revenue")
	assert.Contains(t, out.String(), "600.00")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"legal", "cookiePolicy"}))
	assert.Contains(t, out.String(), "<p>cookiePolicy</p>")
}

func TestLegalSetAndMetrics(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	ctx := context.Background()
	dir := t.TempDir()

	a, out := newTestApp(t, api, filepath.Join(dir, "session.json"))
	require.NoError(t, a.session.Set(api.IssueToken()))

	doc := filepath.Join(dir, "terms.html")
	require.NoError(t, os.WriteFile(doc, []byte("<p>terms</p>"), 0o600))

	require.NoError(t, a.run(ctx, []string{"metrics", "legal-set", "termsOfService", doc}))
	assert.Contains(t, out.String(), "termsOfService saved")
	assert.Contains(t, out.String(), "admin_console_api_requests_total{method=PUT,resource=legal,status=200} 1")
}

func TestUnknownCommand(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()

	a, out := newTestApp(t, api, filepath.Join(t.TempDir(), "session.json"))
	assert.ErrorIs(t, a.run(context.Background(), []string{"frobnicate"}), errUsage)
	assert.Contains(t, out.String(), "unknown command")
}
