package assets

import "errors"

// Resolver tries loaders in order and falls through only on ErrNotFound.
type Resolver struct {
	loaders []Loader
}

// NewResolver returns a Resolver over the embedded assets, with the
// directory at customBasePath layered on top when it is non-empty.
func NewResolver(customBasePath string) (*Resolver, error) {
	if customBasePath == "" {
		return &Resolver{loaders: []Loader{EmbeddedLoader{}}}, nil
	}

	dir, err := NewDirLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	return &Resolver{loaders: []Loader{dir, EmbeddedLoader{}}}, nil
}

// Load implements Loader.
func (r *Resolver) Load(kind Kind, name string) (string, error) {
	var err error
	for _, l := range r.loaders {
		var content string
		content, err = l.Load(kind, name)
		if !errors.Is(err, ErrNotFound) {
			return content, err
		}
	}
	return "", err
}

// Custom reports whether a custom directory is layered over the embedded set.
func (r *Resolver) Custom() bool {
	return len(r.loaders) > 1
}

var _ Loader = (*Resolver)(nil)
