package command

import (
	"fmt"
	"io"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/dogtown/internal/notes"
	"github.com/pixil98/dogtown/internal/notes/filestore"
	"github.com/pixil98/dogtown/internal/notes/rest"
	"github.com/pixil98/dogtown/internal/notes/sqlite"
)

const (
	BackendRest   = "rest"
	BackendSqlite = "sqlite"
	BackendFile   = "file"
)

type BackendConfig struct {
	Kind   string     `json:"kind"`
	Rest   RestConfig `json:"rest"`
	Sqlite PathConfig `json:"sqlite"`
	File   PathConfig `json:"file"`
}

type RestConfig struct {
	URL         string `json:"url"`
	APIKey      string `json:"api_key"`
	AccessToken string `json:"access_token"`
	Timeout     string `json:"timeout"`
}

type PathConfig struct {
	Path string `json:"path"`
}

func (b *BackendConfig) Validate() error {
	el := errors.NewErrorList()

	switch b.Kind {
	case BackendRest:
		el.Add(b.Rest.Validate())
	case BackendSqlite:
		el.Add(b.Sqlite.Validate("sqlite"))
	case BackendFile:
		el.Add(b.File.Validate("file"))
	default:
		el.Add(fmt.Errorf("backend.kind must be one of %q, %q or %q", BackendRest, BackendSqlite, BackendFile))
	}

	return el.Err()
}

func (r *RestConfig) Validate() error {
	el := errors.NewErrorList()

	if r.URL == "" {
		el.Add(fmt.Errorf("rest.url is required"))
	}
	if r.APIKey == "" {
		el.Add(fmt.Errorf("rest.api_key is required"))
	}
	if r.AccessToken == "" {
		el.Add(fmt.Errorf("rest.access_token is required"))
	}
	if r.Timeout != "" {
		if _, err := time.ParseDuration(r.Timeout); err != nil {
			el.Add(fmt.Errorf("parsing rest.timeout: %w", err))
		}
	}

	return el.Err()
}

func (p *PathConfig) Validate(name string) error {
	if p.Path == "" {
		return fmt.Errorf("%s.path is required", name)
	}
	return nil
}

// backend is an opened store with the session that goes with it. closer is nil
// when there is nothing to release.
type backend struct {
	store   notes.Store
	session notes.Session
	closer  io.Closer
}

func (b *BackendConfig) build(user notes.User) (*backend, error) {
	switch b.Kind {
	case BackendRest:
		var opts []rest.ClientOpt
		if b.Rest.Timeout != "" {
			d, err := time.ParseDuration(b.Rest.Timeout)
			if err != nil {
				return nil, fmt.Errorf("parsing rest.timeout: %w", err)
			}
			opts = append(opts, rest.WithTimeout(d))
		}
		client, err := rest.NewClient(b.Rest.URL, b.Rest.APIKey, b.Rest.AccessToken, opts...)
		if err != nil {
			return nil, err
		}
		return &backend{store: rest.NewStore(client), session: rest.NewSession(client, user)}, nil

	case BackendSqlite:
		s, err := sqlite.Open(b.Sqlite.Path)
		if err != nil {
			return nil, err
		}
		return &backend{store: s, session: notes.NewStaticSession(user, nil), closer: s}, nil

	case BackendFile:
		s, err := filestore.Open(b.File.Path)
		if err != nil {
			return nil, err
		}
		return &backend{store: s, session: notes.NewStaticSession(user, nil)}, nil
	}

	return nil, fmt.Errorf("unknown backend %q", b.Kind)
}
