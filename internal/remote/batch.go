package remote

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tichopad/alacritty-theme-switch-sub000/internal/themes"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/errors"
	"github.com/tichopad/alacritty-theme-switch-sub000/pkg/result"
)

// DownloadAll lists the remote themes and fetches every one of them
// concurrently into destDir. The batch is a single combined step for the
// caller, so it aggregates fail-fast: if anything failed, only the first
// failure in listing order is reported. Returns the written paths in listing
// order.
func DownloadAll(ctx context.Context, src Source, destDir string) result.Result[[]string] {
	return result.FlatMap(src.List(ctx), func(descriptors []Descriptor) result.Result[[]string] {
		tasks := make([]*result.Task[string], len(descriptors))
		for i, desc := range descriptors {
			tasks[i] = result.Go(func() result.Result[string] {
				return result.FlatMap(src.Fetch(ctx, desc), func(data []byte) result.Result[string] {
					dest := filepath.Join(destDir, desc.Name)
					if err := os.WriteFile(dest, data, 0o644); err != nil {
						return result.Err[string](errors.NewWriteError(dest, err))
					}
					return result.Ok(dest)
				})
			})
		}
		return result.All(tasks).Await()
	})
}

// ClearDirectory deletes every theme file directly under dir. Partial
// completion is acceptable here, so deletions are attempted for every entry
// and all failures are reported together; on full success the deleted paths
// are returned in directory order.
func ClearDirectory(dir string) result.Result[[]string] {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return result.Err[[]string](errors.NewDirectoryNotAccessibleError(dir, err))
	}

	var tasks []*result.Task[string]
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != themes.Extension {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tasks = append(tasks, result.Go(func() result.Result[string] {
			if err := os.Remove(path); err != nil {
				return result.Err[string](errors.NewDeleteError(path, err))
			}
			return result.Ok(path)
		}))
	}
	return result.AllSettled(tasks).Await()
}
