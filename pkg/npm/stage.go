package npm

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/arthur-debert/npmstage/pkg/filesystem"
	"github.com/arthur-debert/npmstage/pkg/logging"
	"github.com/arthur-debert/npmstage/pkg/types"
	"github.com/rs/zerolog"
)

// Stage copies the items selected by policy from projectDir to targetDir.
//
// Each item is removed from the target before it is copied, so the target
// mirrors the project exactly for every staged item. Entries of the target
// that are not staged are left alone. Stage is a no-op when both directories
// are the same. Copying everything skips node_modules and the entry that
// holds the target when the target lives inside the project; an explicit
// item holding the target is rejected. Items are validated before anything is touched; a failure
// half way through leaves the target partially staged.
func Stage(fsys types.FS, projectDir, targetDir string, policy CopyPolicy) error {
	return stage(fsys, logging.GetLogger("stage"), projectDir, targetDir, policy)
}

func stage(fsys types.FS, logger zerolog.Logger, projectDir, targetDir string, policy CopyPolicy) error {
	if sameDir(projectDir, targetDir) {
		logger.Debug().Str("dir", projectDir).Msg("Project and target are the same, nothing to stage")
		return nil
	}

	items, err := resolveItems(fsys, projectDir, targetDir, policy)
	if err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}
	for _, item := range items {
		if holdsTarget(filepath.Join(projectDir, item), targetDir) {
			return errors.Newf(errors.ErrInvalidInput, "item %q contains the target directory %s", item, targetDir).
				WithDetail("item", item).
				WithDetail("target", targetDir)
		}
	}

	done := logging.LogOperationStart(logger, "stage")
	defer done()

	for _, item := range items {
		from := filepath.Join(projectDir, item)
		to := filepath.Join(targetDir, item)

		if err := filesystem.RemoveTree(fsys, to); err != nil {
			return errors.Wrapf(err, errors.ErrItemRemove, "failed to remove %s", to).
				WithDetail("item", item)
		}
		if err := filesystem.CopyTree(fsys, from, to); err != nil {
			return errors.Wrapf(err, errors.ErrItemCopy, "failed to copy %s to %s", from, to).
				WithDetail("item", item)
		}
		logger.Trace().Str("item", item).Msg("Staged item")
	}

	logger.Debug().
		Str("project", projectDir).
		Str("target", targetDir).
		Int("items", len(items)).
		Msg("Staged project")
	return nil
}

func sameDir(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// holdsTarget reports whether dir is the target or one of its ancestors.
// Copying such an entry would copy the target into itself.
func holdsTarget(dir, targetDir string) bool {
	if filepath.IsAbs(dir) != filepath.IsAbs(targetDir) {
		var err error
		if dir, err = filepath.Abs(dir); err != nil {
			return false
		}
		if targetDir, err = filepath.Abs(targetDir); err != nil {
			return false
		}
	}
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(targetDir))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func resolveItems(fsys types.FS, projectDir, targetDir string, policy CopyPolicy) ([]string, error) {
	switch policy.Kind() {
	case CopyKindAll:
		entries, err := fsys.ReadDir(projectDir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrReadDir, "failed to list project directory %s", projectDir)
		}
		items := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.Name() == DependencyDir {
				continue
			}
			if holdsTarget(filepath.Join(projectDir, entry.Name()), targetDir) {
				continue
			}
			items = append(items, entry.Name())
		}
		return items, nil
	case CopyKindExplicit:
		return policy.Paths(), nil
	default:
		return nil, errors.New(errors.ErrNoCopyPolicy,
			"target directory differs from project directory but no items were selected to copy").
			WithDetail("project", projectDir).
			WithDetail("target", targetDir)
	}
}

// validateItems rejects absolute items, and relative items that would make
// the remove step reach outside the target (empty, "." or "../x").
func validateItems(items []string) error {
	for _, item := range items {
		if filepath.IsAbs(item) {
			return errors.Newf(errors.ErrAbsolutePath, "items to be copied cannot be absolute paths: %s", item).
				WithDetail("item", item)
		}
		clean := filepath.Clean(item)
		if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return errors.Newf(errors.ErrInvalidInput, "item %q does not name an entry inside the project", item).
				WithDetail("item", item)
		}
	}
	return nil
}
