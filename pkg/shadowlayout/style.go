package shadowlayout

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Style is a YAML style document: the attributes of one container plus
// the minimum renderer version it was written for.
type Style struct {
	// Requires is an optional semantic version such as "v0.3.0".
	Requires   string `yaml:"requires,omitempty"`
	Attributes `yaml:",inline"`
}

// LoadStyle decodes a style document. An empty document yields the
// default style.
func LoadStyle(r io.Reader) (*Style, error) {
	var st Style
	if err := yaml.NewDecoder(r).Decode(&st); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse style: %w", err)
	}
	if st.Requires != "" && !semver.IsValid(canonicalVersion(st.Requires)) {
		return nil, fmt.Errorf("invalid requires version %q", st.Requires)
	}
	return &st, nil
}

// LoadStyleFile reads and decodes the style at path.
func LoadStyleFile(path string) (*Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style: %w", err)
	}
	defer f.Close()
	st, err := LoadStyle(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// LoadAttributes decodes the attributes of a style document.
func LoadAttributes(r io.Reader) (Attributes, error) {
	st, err := LoadStyle(r)
	if err != nil {
		return Attributes{}, err
	}
	return st.Attributes, nil
}

// LoadAttributesFile reads the attributes of the style at path.
func LoadAttributesFile(path string) (Attributes, error) {
	st, err := LoadStyleFile(path)
	if err != nil {
		return Attributes{}, err
	}
	return st.Attributes, nil
}

// Supports reports whether a renderer at version satisfies the style's
// Requires. Versions may omit the leading "v". A pre-release or build of
// a version counts as that version, so "0.3.0-dev" satisfies "v0.3.0".
// Versions that are not semantic versions at all, such as "dev", support
// every style.
func (s *Style) Supports(version string) bool {
	if s.Requires == "" {
		return true
	}
	v := releaseVersion(version)
	if !semver.IsValid(v) {
		return true
	}
	return semver.Compare(v, releaseVersion(s.Requires)) >= 0
}

// canonicalVersion adds the "v" prefix semver expects when it is missing.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// releaseVersion strips pre-release and build suffixes from v.
func releaseVersion(v string) string {
	v = canonicalVersion(v)
	v = strings.TrimSuffix(v, semver.Build(v))
	return strings.TrimSuffix(v, semver.Prerelease(v))
}
