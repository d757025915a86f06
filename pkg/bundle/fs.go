package bundle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FSLoader reads bundles from an fs.FS, one file per (locale, namespace)
// resolved through a path template. Works with embed.FS and os.DirFS
// alike.
//
// Default layout:
//
//	en/common.json
//	en/auth.json
//	de/common.yaml
type FSLoader struct {
	fsys     fs.FS
	template Template
}

// FSOption configures an FSLoader.
type FSOption func(*FSLoader)

// WithFSTemplate replaces the default {{locale}}/{{namespace}}.json path
// template.
func WithFSTemplate(t Template) FSOption {
	return func(l *FSLoader) {
		if t != "" {
			l.template = t
		}
	}
}

// NewFS creates a loader reading bundle files from fsys.
func NewFS(fsys fs.FS, opts ...FSOption) *FSLoader {
	l := &FSLoader{
		fsys:     fsys,
		template: DefaultTemplate,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and decodes the bundle file for (locale, namespace). When the
// template names a JSON file, the .yaml and .yml siblings are tried after
// it, matching the on-disk conventions of mixed-format translation trees.
// A file that exists in no format is a plain miss and yields an empty
// bundle.
func (l *FSLoader) Load(_ context.Context, locale, namespace string) (map[string]any, error) {
	for _, name := range candidatePaths(l.template.Expand(locale, namespace)) {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %w", ErrLoadFailed, name, err)
		}
		return decodeTree(name, data)
	}
	return map[string]any{}, nil
}

// candidatePaths expands a JSON path to its YAML siblings; any other
// extension is served as-is.
func candidatePaths(name string) []string {
	ext := path.Ext(name)
	if strings.ToLower(ext) != ".json" {
		return []string{name}
	}
	stem := strings.TrimSuffix(name, ext)
	return []string{name, stem + ".yaml", stem + ".yml"}
}
