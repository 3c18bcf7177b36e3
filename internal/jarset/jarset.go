// Package jarset acquires the jars a View is built from: either downloaded
// from URLs (the CLI's primary path, per spec.md §6's "list of jar URLs")
// or discovered on disk under a directory. Neither operation is part of
// the spec's core contract; both are the domain-stack supplement described
// in SPEC_FULL.md's "jar acquisition" section.
package jarset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Fetch downloads each url into cacheDir, naming the cached file by the
// SHA-256 hex of the URL so repeated runs against the same jar reuse the
// cached copy — the same freshness idea as the teacher's --cache flag, but
// applied per-jar rather than to the whole output. Returns the local paths
// in the same order as urls.
func Fetch(ctx context.Context, urls []string, cacheDir string) ([]string, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("jarset: creating cache dir: %w", err)
	}

	paths := make([]string, 0, len(urls))
	for _, u := range urls {
		path, err := fetchOne(ctx, u, cacheDir)
		if err != nil {
			return nil, fmt.Errorf("jarset: fetching %s: %w", u, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func fetchOne(ctx context.Context, url, cacheDir string) (string, error) {
	name := cacheName(url)
	path := filepath.Join(cacheDir, name)

	if _, err := os.Stat(path); err == nil {
		return path, nil // already cached
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(cacheDir, "download-*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return "", err
	}
	return path, nil
}

func cacheName(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]) + ".jar"
}

// Discover walks dir for *.jar files, skipping entries matched by a
// .gitignore at dir's root, the same discovery idiom as the teacher's
// internal/discover.Files — ported from "files to parse" to "jars to
// mine".
func Discover(dir string) ([]string, error) {
	gi := loadGitignore(dir)

	var results []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".jar") {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
