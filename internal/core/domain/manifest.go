package domain

import (
	"encoding/json"
	"regexp"

	"go.trai.ch/zerr"
)

// Manifest is one package's parsed package.json plus its raw text.
// Reads go through the parsed fields; writes are textual splices into Raw so
// that saving a manifest never reorders keys or reflows formatting.
type Manifest struct {
	// Path is the absolute path the manifest was read from.
	Path string
	// Raw is the manifest text as read from disk, updated by rewrites.
	Raw []byte

	// Name is the published package name (e.g. "@lezer/common").
	Name string
	// Version is the current package version.
	Version string
	// Dependencies holds the runtime dependency constraints.
	Dependencies map[string]string
	// DevDependencies holds the development dependency constraints.
	DevDependencies map[string]string
}

type manifestFields struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParseManifest parses raw package.json text.
func ParseManifest(path string, raw []byte) (*Manifest, error) {
	var fields manifestFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	return &Manifest{
		Path:            path,
		Raw:             raw,
		Name:            fields.Name,
		Version:         fields.Version,
		Dependencies:    fields.Dependencies,
		DevDependencies: fields.DevDependencies,
	}, nil
}

var versionFieldRE = regexp.MustCompile(`("version"\s*:\s*")([^"]*)(")`)

// SetVersion rewrites the manifest's version field in place.
func (m *Manifest) SetVersion(version string) error {
	loc := versionFieldRE.FindSubmatchIndex(m.Raw)
	if loc == nil {
		return zerr.With(zerr.With(ErrManifestField, "field", "version"), "path", m.Path)
	}
	m.Raw = splice(m.Raw, loc[4], loc[5], version)
	m.Version = version
	return nil
}

// SetDependency rewrites the constraint of the named dependency wherever it
// appears (dependencies or devDependencies). It reports whether any
// constraint changed; an absent dependency is a no-op, not an error.
func (m *Manifest) SetDependency(name, constraint string) bool {
	re := regexp.MustCompile(`("` + regexp.QuoteMeta(name) + `"\s*:\s*")([^"]*)(")`)

	changed := false
	locs := re.FindAllSubmatchIndex(m.Raw, -1)
	// Splice from the back so earlier match offsets stay valid.
	for i := len(locs) - 1; i >= 0; i-- {
		loc := locs[i]
		if string(m.Raw[loc[4]:loc[5]]) == constraint {
			continue
		}
		m.Raw = splice(m.Raw, loc[4], loc[5], constraint)
		changed = true
	}

	if _, ok := m.Dependencies[name]; ok {
		m.Dependencies[name] = constraint
	}
	if _, ok := m.DevDependencies[name]; ok {
		m.DevDependencies[name] = constraint
	}
	return changed
}

// DependsOn reports whether the manifest references the named package in
// either dependency table.
func (m *Manifest) DependsOn(name string) bool {
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

func splice(raw []byte, start, end int, replacement string) []byte {
	out := make([]byte, 0, len(raw)-(end-start)+len(replacement))
	out = append(out, raw[:start]...)
	out = append(out, replacement...)
	out = append(out, raw[end:]...)
	return out
}
