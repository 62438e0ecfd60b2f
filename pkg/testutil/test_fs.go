package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/npmstage/pkg/filesystem"
	"github.com/arthur-debert/npmstage/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFiles creates files under root. Keys are slash separated paths
// relative to root; parent directories are created.
func WriteFiles(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
}

// ReadTree returns every regular file below root keyed by its slash
// separated path relative to root.
func ReadTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(path)
				continue
			}
			data, err := fsys.ReadFile(path)
			require.NoError(t, err)
			rel, err := filepath.Rel(root, path)
			require.NoError(t, err)
			out[filepath.ToSlash(rel)] = string(data)
		}
	}
	walk(root)
	return out
}

// RecordingFS wraps a types.FS and records every mutating call as
// "<op> <path>".
type RecordingFS struct {
	types.FS

	mu  sync.Mutex
	ops []string
}

// NewRecordingFS wraps fsys
func NewRecordingFS(fsys types.FS) *RecordingFS {
	return &RecordingFS{FS: fsys}
}

func (r *RecordingFS) record(op, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op+" "+path)
}

// Ops returns the recorded mutations in call order
func (r *RecordingFS) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

// Mutations returns the number of recorded mutations
func (r *RecordingFS) Mutations() int {
	return len(r.Ops())
}

// Touched returns the sorted set of paths that were mutated
func (r *RecordingFS) Touched() []string {
	seen := make(map[string]bool)
	for _, op := range r.Ops() {
		_, path, _ := strings.Cut(op, " ")
		seen[path] = true
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (r *RecordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	r.record("write", name)
	return r.FS.WriteFile(name, data, perm)
}

func (r *RecordingFS) MkdirAll(path string, perm fs.FileMode) error {
	r.record("mkdir", path)
	return r.FS.MkdirAll(path, perm)
}

func (r *RecordingFS) Symlink(oldname, newname string) error {
	r.record("symlink", newname)
	return r.FS.Symlink(oldname, newname)
}

func (r *RecordingFS) Remove(name string) error {
	r.record("remove", name)
	return r.FS.Remove(name)
}

func (r *RecordingFS) RemoveAll(path string) error {
	r.record("removeall", path)
	return r.FS.RemoveAll(path)
}

// FailingFS wraps a types.FS and fails selected operations
type FailingFS struct {
	types.FS

	// Fail returns a non-nil error to make op on path fail
	Fail func(op, path string) error
}

func (f *FailingFS) check(op, path string) error {
	if f.Fail == nil {
		return nil
	}
	return f.Fail(op, path)
}

func (f *FailingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check("write", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check("mkdir", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) RemoveAll(path string) error {
	if err := f.check("removeall", path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
