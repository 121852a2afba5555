// Package jsonfile implements the task store as a single JSON file
// holding the full collection keyed by task ID. Writes go through a
// temporary file and rename so a failed save never truncates the store.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

const schemaURL = "tasks-schema.json"

// Store persists the task collection to a JSON file
type Store struct {
	path   string
	schema *jsonschema.Schema
}

// New creates a JSON file store at the given path, creating the parent
// directory if needed.
func New(path string, dirPermissions os.FileMode) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, errors.NewStorageError("create store directory", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(taskCollectionSchema)); err != nil {
		return nil, errors.NewStorageError("register store schema", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, errors.NewStorageError("compile store schema", err)
	}

	return &Store{path: path, schema: schema}, nil
}

// Load reads the full task collection. A missing file is an empty store,
// not an error; anything unparsable or invariant-violating is a corrupt
// store and must stop the caller.
func (s *Store) Load(ctx context.Context) (map[string]*domain.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]*domain.Task), nil
		}
		return nil, errors.NewStorageError("read store file", err)
	}

	if len(data) == 0 {
		return make(map[string]*domain.Task), nil
	}

	// Structural validation first, so corruption is reported with the
	// offending location instead of as a decoding side effect
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, err)
	}
	if err := s.schema.Validate(raw); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, err)
	}

	var tasks map[string]*domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, err)
	}

	for id, task := range tasks {
		if task.ID != id {
			return nil, errors.NewCorruptStoreError(s.path,
				fmt.Errorf("task keyed %q carries id %q", id, task.ID))
		}
		if err := task.Validate(); err != nil {
			return nil, errors.NewCorruptStoreError(s.path, err)
		}
	}

	return tasks, nil
}

// Save writes the full task collection atomically: marshal, write to a
// temporary file in the same directory, then rename over the store file.
func (s *Store) Save(ctx context.Context, tasks map[string]*domain.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errors.NewWriteFailureError(s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.NewWriteFailureError(s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewWriteFailureError(s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewWriteFailureError(s.path, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewWriteFailureError(s.path, err)
	}

	return nil
}

// Close is a no-op; the store holds no open resources between calls
func (s *Store) Close() error {
	return nil
}
