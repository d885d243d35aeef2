// Package remote acquires theme files from a git repository such as
// github.com/alacritty/alacritty-theme. The rest of the program treats this
// package as an opaque collaborator: every failure surfaces as a RemoteError.
package remote

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/errors"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// Descriptor identifies one theme file in the remote repository.
type Descriptor struct {
	Name string // base file name, e.g. "monokai_pro.toml"
	Path string // path relative to the repository root
}

// Source lists and fetches remote theme files.
type Source interface {
	List(ctx context.Context) result.Result[[]Descriptor]
	Fetch(ctx context.Context, desc Descriptor) result.Result[[]byte]
}

// GitSource implements Source by cloning the repository once and serving
// descriptors and content from the local clone.
type GitSource struct {
	URL    string
	Ref    string // branch name; empty means the remote default
	Subdir string // directory inside the repository holding the themes
	Depth  int    // clone depth; zero means full history

	mu      sync.Mutex
	workdir string
}

var _ Source = (*GitSource)(nil)

// List clones the repository if needed and returns every theme file under
// Subdir, ordered by name.
func (s *GitSource) List(ctx context.Context) result.Result[[]Descriptor] {
	workdir, err := s.ensureClone(ctx)
	if err != nil {
		return result.Err[[]Descriptor](errors.NewRemoteError("list", err))
	}

	root := filepath.Join(workdir, s.Subdir)
	var found []Descriptor
	walkErr := filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != themes.Extension {
			return nil
		}
		rel, err := filepath.Rel(workdir, path)
		if err != nil {
			return err
		}
		found = append(found, Descriptor{Name: filepath.Base(path), Path: rel})
		return nil
	})
	if walkErr != nil {
		return result.Err[[]Descriptor](errors.NewRemoteError("list", walkErr))
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return result.Ok(found)
}

// Fetch returns the raw content of one previously listed descriptor.
func (s *GitSource) Fetch(ctx context.Context, desc Descriptor) result.Result[[]byte] {
	workdir, err := s.ensureClone(ctx)
	if err != nil {
		return result.Err[[]byte](errors.NewRemoteError("fetch", err))
	}

	data, err := os.ReadFile(filepath.Join(workdir, desc.Path))
	if err != nil {
		return result.Err[[]byte](errors.NewRemoteError("fetch", err))
	}
	return result.Ok(data)
}

// Close removes the local clone.
func (s *GitSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.workdir == "" {
		return nil
	}
	workdir := s.workdir
	s.workdir = ""
	return os.RemoveAll(workdir)
}

func (s *GitSource) ensureClone(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.workdir != "" {
		return s.workdir, nil
	}

	workdir, err := os.MkdirTemp("", "alacritty-themes-*")
	if err != nil {
		return "", err
	}

	opts := &git.CloneOptions{URL: s.URL}
	if s.Depth > 0 {
		opts.Depth = s.Depth
	}
	if s.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(s.Ref)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, workdir, false, opts); err != nil {
		os.RemoveAll(workdir)
		return "", err
	}

	s.workdir = workdir
	return workdir, nil
}
