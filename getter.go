package hdltarget

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flytam/filenamify"
	getter "github.com/hashicorp/go-getter"
)

// DesignFetcher resolves a remote design source to a design file on disk
type DesignFetcher interface {
	Fetch(ctx context.Context, src string, refresh bool) (string, error)
}

type downloadFunc func(ctx context.Context, src, dst, pwd string) error

// RemoteFetcher downloads design sources with go-getter into a cache folder.
// Every source is kept in its own sub folder named after the source, so
// github.com/designs/counter?ref=v1 is stored in github.com_designs_counter_ref=v1.
//
// A downloaded source is reused until Fetch is called with refresh set.
type RemoteFetcher struct {
	cache    string
	download downloadFunc
}

var _ DesignFetcher = (*RemoteFetcher)(nil)

// NewRemoteFetcher returns a fetcher storing downloads below cache
func NewRemoteFetcher(cache string) *RemoteFetcher {
	return &RemoteFetcher{cache: cache, download: goGetterDownload}
}

func goGetterDownload(ctx context.Context, src, dst, pwd string) error {
	c := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}

	if err := c.Get(); err != nil {
		return fmt.Errorf("unable to fetch design from %s: %w", src, err)
	}

	return nil
}

// CachePath returns the folder src is downloaded to
func (f *RemoteFetcher) CachePath(src string) (string, error) {
	name, err := filenamify.Filenamify(src, filenamify.Options{Replacement: "_"})
	if err != nil {
		return "", fmt.Errorf("unable to create cache folder name for %s: %w", src, err)
	}

	return filepath.Join(f.cache, name), nil
}

// Fetch downloads src when it is not cached yet, or always when refresh is
// set, and returns the design file it contains. A source that is a folder
// must hold exactly one .hcl file.
func (f *RemoteFetcher) Fetch(ctx context.Context, src string, refresh bool) (string, error) {
	dir, err := f.CachePath(src)
	if err != nil {
		return "", err
	}

	_, statErr := os.Stat(dir)
	if statErr != nil || refresh {
		if err := f.refresh(ctx, src, dir); err != nil {
			return "", err
		}
	}

	return findDesignFile(dir)
}

// refresh replaces the cached copy of src, files left from an older download
// would otherwise count as extra designs
func (f *RemoteFetcher) refresh(ctx context.Context, src, dir string) error {
	pwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("unable to clear cached design %s: %w", dir, err)
	}

	return f.download(ctx, src, dir, pwd)
}

func findDesignFile(path string) (string, error) {
	s, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if !s.IsDir() {
		return path, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.hcl"))
	if err != nil {
		return "", err
	}

	if len(files) != 1 {
		return "", fmt.Errorf("expected a single design file in %s, found %d", path, len(files))
	}

	return files[0], nil
}
