// Package site exposes the build pipeline's output to the deploy flow.
//
// The builder decides what gets uploaded; this package only reads its
// manifest (or, failing that, the build directory listing) and appends the
// fixed runtime support files every deployed site needs.
package site

import (
	"embed"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lanternhq/lantern/pkg/errors"
)

// ManifestName is the optional ordered file list emitted by the builder.
const ManifestName = "manifest.yaml"

// runtimeDir is the upload prefix for the framework support files.
const runtimeDir = "_lantern"

//go:embed runtime/runtime.js runtime/stdlib.js
var runtimeFS embed.FS

// runtimeFiles is the fixed support file list, appended after the build
// output in this order.
var runtimeFiles = []string{"runtime.js", "stdlib.js"}

// File is one uploadable entry: the remote path and a way to read it.
type File struct {
	Path string
	Open func() (io.ReadCloser, error)
}

type manifest struct {
	Files []string `yaml:"files"`
}

// LoadFiles returns the ordered upload list for a build directory: the
// build output (manifest order when a manifest exists, lexical order
// otherwise) followed by the runtime support files.
func LoadFiles(buildDir string) ([]File, error) {
	info, err := os.Stat(buildDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrBuildMissing,
			"build directory %q not found; run the site build first", buildDir)
	}

	paths, err := buildPaths(buildDir)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(paths)+len(runtimeFiles))
	for _, rel := range paths {
		files = append(files, diskFile(buildDir, rel))
	}
	for _, name := range runtimeFiles {
		files = append(files, embeddedFile(name))
	}
	return files, nil
}

func buildPaths(buildDir string) ([]string, error) {
	manifestPath := filepath.Join(buildDir, ManifestName)
	if data, err := os.ReadFile(manifestPath); err == nil {
		var m manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrBuildMissing,
				"invalid build manifest %s", manifestPath)
		}
		for _, rel := range m.Files {
			if _, err := os.Stat(filepath.Join(buildDir, filepath.FromSlash(rel))); err != nil {
				return nil, errors.Newf(errors.ErrBuildMissing,
					"build manifest names %q but the file is missing", rel)
			}
		}
		return m.Files, nil
	}

	var paths []string
	err := filepath.WalkDir(buildDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(buildDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == ManifestName {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBuildMissing,
			"failed to list build directory %q", buildDir)
	}
	sort.Strings(paths)
	return paths, nil
}

func diskFile(buildDir, rel string) File {
	return File{
		Path: rel,
		Open: func() (io.ReadCloser, error) {
			return os.Open(filepath.Join(buildDir, filepath.FromSlash(rel)))
		},
	}
}

func embeddedFile(name string) File {
	return File{
		Path: path.Join(runtimeDir, name),
		Open: func() (io.ReadCloser, error) {
			return runtimeFS.Open(path.Join("runtime", name))
		},
	}
}
