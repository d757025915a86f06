package bundle

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader fetches the decoded translation tree for one (locale, namespace)
// pair. A missing bundle is not a failure: loaders return an empty tree
// with a nil error so the miss caches quietly. Transport and parse
// failures return an error; the Cache absorbs it, logs it, and caches an
// empty bundle in its place.
type Loader interface {
	Load(ctx context.Context, locale, namespace string) (map[string]any, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, locale, namespace string) (map[string]any, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, locale, namespace string) (map[string]any, error) {
	return f(ctx, locale, namespace)
}

// Static returns a loader serving bundles from an in-memory tree keyed by
// locale, then namespace. Useful for tests and embedded defaults.
func Static(data map[string]map[string]map[string]any) Loader {
	return LoaderFunc(func(_ context.Context, locale, namespace string) (map[string]any, error) {
		if tree, ok := data[locale][namespace]; ok {
			return tree, nil
		}
		return map[string]any{}, nil
	})
}

type chainLoader struct {
	loaders []Loader
}

// NewChain returns a loader that consults each loader in order and serves
// the first non-empty bundle, so local sources can override remote ones.
// Individual failures are collected and surface only when no loader
// produced content.
func NewChain(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func (c *chainLoader) Load(ctx context.Context, locale, namespace string) (map[string]any, error) {
	var errs []error
	for _, l := range c.loaders {
		tree, err := l.Load(ctx, locale, namespace)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(tree) > 0 {
			return tree, nil
		}
	}
	return map[string]any{}, errors.Join(errs...)
}

// decodeTree unmarshals bundle bytes according to the file extension of
// name: .yaml and .yml decode as YAML, everything else as JSON.
func decodeTree(name string, data []byte) (map[string]any, error) {
	var tree map[string]any
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
	default:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
	}
	if tree == nil {
		tree = make(map[string]any)
	}
	return tree, nil
}
