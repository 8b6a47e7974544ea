package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// RecordStore loads and saves whole task collections.
type RecordStore interface {
	Load(c models.Collection) ([]models.Task, error)
	Save(c models.Collection, tasks []models.Task) error
}

type fileRecordStore struct {
	paths models.StorePaths
}

// NewRecordStore creates a RecordStore backed by one CSV file per collection.
// Files and their parent directories are created on first save.
func NewRecordStore(paths models.StorePaths) RecordStore {
	return &fileRecordStore{paths: paths}
}

func (s *fileRecordStore) path(c models.Collection) (string, error) {
	switch c {
	case models.CollectionActive, models.CollectionCompleted:
	default:
		return "", fmt.Errorf("unknown collection %q", c)
	}
	p := s.paths.For(c)
	if p == "" {
		return "", fmt.Errorf("no file configured for %s collection", c)
	}
	return p, nil
}

// Load reads every record of the collection. A missing file yields an
// empty slice.
func (s *fileRecordStore) Load(c models.Collection) ([]models.Task, error) {
	path, err := s.path(c)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return nil, &StorageError{Op: "reading", Path: path, Err: err}
	}

	tasks, err := decodeTasks(bytes.NewReader(data), c.State())
	if err != nil {
		serr := &StorageError{Op: "parsing", Path: path, Err: err}
		var re *rowError
		if errors.As(err, &re) {
			serr.Line = re.line
			serr.Err = re.err
		}
		return nil, serr
	}
	return tasks, nil
}

// Save replaces the collection file with the given records.
func (s *fileRecordStore) Save(c models.Collection, tasks []models.Task) error {
	path, err := s.path(c)
	if err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	data, err := encodeTasks(tasks)
	if err != nil {
		return &StorageError{Op: "encoding", Path: path, Err: err}
	}
	if err := writeFileAtomic(path, data, 0o600); err != nil {
		return &StorageError{Op: "writing", Path: path, Err: err}
	}
	return nil
}

// Find returns the index of the task with the given id, or ErrNotFound.
func Find(tasks []models.Task, id string) (int, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so readers see either the old or the new contents.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
