package domain_test

import (
	"testing"

	"github.com/lezer-parser/lezer/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestFixture = `{
  "name": "@lezer/lr",
  "version": "1.4.2",
  "main": "dist/index.cjs",
  "dependencies": {
    "@lezer/common": "^1.2.0"
  },
  "devDependencies": {
    "@lezer/generator": "^1.7.0",
    "rollup": "^4.0.0"
  }
}
`

func TestParseManifest(t *testing.T) {
	m, err := domain.ParseManifest("/ws/lr/package.json", []byte(manifestFixture))
	require.NoError(t, err)

	assert.Equal(t, "@lezer/lr", m.Name)
	assert.Equal(t, "1.4.2", m.Version)
	assert.Equal(t, "^1.2.0", m.Dependencies["@lezer/common"])
	assert.Equal(t, "^1.7.0", m.DevDependencies["@lezer/generator"])
	assert.True(t, m.DependsOn("@lezer/common"))
	assert.True(t, m.DependsOn("@lezer/generator"))
	assert.False(t, m.DependsOn("@lezer/css"))
}

func TestParseManifest_Invalid(t *testing.T) {
	_, err := domain.ParseManifest("/ws/broken/package.json", []byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestManifest_SetVersion(t *testing.T) {
	m, err := domain.ParseManifest("package.json", []byte(manifestFixture))
	require.NoError(t, err)

	require.NoError(t, m.SetVersion("1.5.0"))
	assert.Equal(t, "1.5.0", m.Version)

	// The rewrite is a splice: everything except the version value survives
	// byte for byte, including key order and indentation.
	assert.Contains(t, string(m.Raw), `"version": "1.5.0"`)
	assert.Contains(t, string(m.Raw), "{\n  \"name\": \"@lezer/lr\",\n  \"version\": \"1.5.0\",\n  \"main\"")

	// The result still parses.
	again, err := domain.ParseManifest("package.json", m.Raw)
	require.NoError(t, err)
	assert.Equal(t, "1.5.0", again.Version)
}

func TestManifest_SetVersion_MissingField(t *testing.T) {
	m, err := domain.ParseManifest("package.json", []byte(`{"name": "@lezer/x"}`))
	require.NoError(t, err)

	err = m.SetVersion("1.0.0")
	require.ErrorContains(t, err, domain.ErrManifestField.Error())
}

func TestManifest_SetDependency(t *testing.T) {
	m, err := domain.ParseManifest("package.json", []byte(manifestFixture))
	require.NoError(t, err)

	changed := m.SetDependency("@lezer/common", "^1.3.0")
	assert.True(t, changed)
	assert.Equal(t, "^1.3.0", m.Dependencies["@lezer/common"])
	assert.Contains(t, string(m.Raw), `"@lezer/common": "^1.3.0"`)

	// Same constraint again is a no-op.
	assert.False(t, m.SetDependency("@lezer/common", "^1.3.0"))

	// Absent dependencies are left alone.
	assert.False(t, m.SetDependency("@lezer/css", "^1.0.0"))
	assert.NotContains(t, string(m.Raw), "@lezer/css")
}

func TestManifest_SetDependency_DevDependencies(t *testing.T) {
	m, err := domain.ParseManifest("package.json", []byte(manifestFixture))
	require.NoError(t, err)

	changed := m.SetDependency("@lezer/generator", "^1.8.0")
	assert.True(t, changed)
	assert.Equal(t, "^1.8.0", m.DevDependencies["@lezer/generator"])
	assert.Contains(t, string(m.Raw), `"@lezer/generator": "^1.8.0"`)

	// Unrelated constraints are untouched.
	assert.Contains(t, string(m.Raw), `"rollup": "^4.0.0"`)

	// The manifest's own name field is never rewritten.
	assert.Contains(t, string(m.Raw), `"name": "@lezer/lr"`)
}

func TestManifest_SetDependency_BothTables(t *testing.T) {
	raw := `{
  "name": "@lezer/html",
  "version": "0.1.0",
  "dependencies": { "@lezer/common": "^1.0.0" },
  "devDependencies": { "@lezer/common": "^1.0.0" }
}
`
	m, err := domain.ParseManifest("package.json", []byte(raw))
	require.NoError(t, err)

	assert.True(t, m.SetDependency("@lezer/common", "^1.1.0"))
	assert.Equal(t, "^1.1.0", m.Dependencies["@lezer/common"])
	assert.Equal(t, "^1.1.0", m.DevDependencies["@lezer/common"])
	assert.NotContains(t, string(m.Raw), "^1.0.0")
}
