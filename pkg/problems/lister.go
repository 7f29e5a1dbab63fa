// Package problems lists and downloads problem-set files kept in a GitHub
// repository.
package problems

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Defaults for the zero Lister.
const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultOwner     = "wbhart"
	DefaultRepo      = "ProofDroid"
	DefaultExtension = ".json"
	DefaultLimit     = 4
)

// ErrNotDirectory is returned when the listed path is not a directory.
var ErrNotDirectory = errors.New("contents API did not return a directory listing")

// Lister reads a repository through the GitHub contents API. Zero fields
// take the package defaults.
type Lister struct {
	BaseURL   string
	Owner     string
	Repo      string
	Extension string
	// Limit bounds concurrent downloads in Fetch.
	Limit  int
	Client *http.Client
	Logger *slog.Logger
}

type entry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// List returns the names of the files in dir that carry the configured
// extension, in the order the API reports them.
func (l *Lister) List(ctx context.Context, dir string) ([]string, error) {
	body, err := l.get(ctx, dir, "application/vnd.github+json")
	if err != nil {
		return nil, fmt.Errorf("List %s: %w", dir, err)
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("List %s: %w", dir, ErrNotDirectory)
	}
	var entries []entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("List %s: decode response: %w", dir, err)
	}

	ext := l.extension()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name, ext) {
			names = append(names, e.Name)
		}
	}
	l.logger().Debug("problems: listed directory",
		slog.String("dir", dir),
		slog.Int("entries", len(entries)),
		slog.Int("matched", len(names)))
	return names, nil
}

// Fetch downloads the named files from dir concurrently and returns their
// contents by name. The first failure cancels the remaining downloads.
func (l *Lister) Fetch(ctx context.Context, dir string, names ...string) (map[string][]byte, error) {
	var (
		mu  sync.Mutex
		out = make(map[string][]byte, len(names))
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit())
	for _, name := range names {
		g.Go(func() error {
			body, err := l.get(ctx, path.Join(dir, name), "application/vnd.github.raw+json")
			if err != nil {
				return fmt.Errorf("Fetch %s: %w", name, err)
			}
			mu.Lock()
			out[name] = body
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	l.logger().Debug("problems: fetched files", slog.String("dir", dir), slog.Int("files", len(out)))
	return out, nil
}

func (l *Lister) get(ctx context.Context, p, accept string) ([]byte, error) {
	u, err := l.contentsURL(p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := l.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contents API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (l *Lister) contentsURL(p string) (string, error) {
	base := l.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	owner, repo := l.Owner, l.Repo
	if owner == "" {
		owner = DefaultOwner
	}
	if repo == "" {
		repo = DefaultRepo
	}
	u, err := url.JoinPath(base, "repos", owner, repo, "contents", strings.Trim(p, "/"))
	if err != nil {
		return "", fmt.Errorf("build URL: %w", err)
	}
	return u, nil
}

func (l *Lister) extension() string {
	if l.Extension == "" {
		return DefaultExtension
	}
	return l.Extension
}

func (l *Lister) limit() int {
	if l.Limit <= 0 {
		return DefaultLimit
	}
	return l.Limit
}

func (l *Lister) client() *http.Client {
	if l.Client == nil {
		return http.DefaultClient
	}
	return l.Client
}

func (l *Lister) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
