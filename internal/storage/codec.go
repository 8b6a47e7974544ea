package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/valter-silva-au/task-tracker/pkg/models"
)

// header is the first row of every collection file.
var header = []string{"id", "title", "notes"}

// escapeField protects carriage returns, which encoding/csv folds into
// plain newlines on read. Backslash is the escape character.
func escapeField(s string) string {
	if !strings.ContainsAny(s, "\\\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func unescapeField(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", errors.New("dangling escape at end of field")
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", fmt.Errorf("unknown escape sequence \\%c", s[i])
		}
	}
	return b.String(), nil
}

// encodeTasks serializes tasks as CSV rows under the standard header.
func encodeTasks(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		row := []string{escapeField(t.ID), escapeField(t.Title), escapeField(t.Notes)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rowError carries the line number of a malformed row up to the caller,
// which wraps it into a StorageError with the file path.
type rowError struct {
	line int
	err  error
}

func (e *rowError) Error() string { return e.err.Error() }
func (e *rowError) Unwrap() error { return e.err }

// decodeTasks parses collection rows. Every row must have exactly the
// header's fields and a unique, non-empty id. An empty input decodes to an
// empty slice.
func decodeTasks(r io.Reader, state models.TaskState) ([]models.Task, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []models.Task{}, nil
	}
	if err != nil {
		return nil, csvRowError(err)
	}
	if !slices.Equal(first, header) {
		return nil, &rowError{line: 1, err: fmt.Errorf("unexpected header %q, want %q", strings.Join(first, ","), strings.Join(header, ","))}
	}

	tasks := []models.Task{}
	seen := make(map[string]struct{})
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvRowError(err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) != len(header) {
			return nil, &rowError{line: line, err: fmt.Errorf("expected %d fields, got %d", len(header), len(row))}
		}
		id, err := unescapeField(row[0])
		if err != nil {
			return nil, &rowError{line: line, err: fmt.Errorf("id: %w", err)}
		}
		if strings.TrimSpace(id) == "" {
			return nil, &rowError{line: line, err: errors.New("empty task id")}
		}
		if _, dup := seen[id]; dup {
			return nil, &rowError{line: line, err: fmt.Errorf("duplicate task id %q", id)}
		}
		seen[id] = struct{}{}

		title, err := unescapeField(row[1])
		if err != nil {
			return nil, &rowError{line: line, err: fmt.Errorf("title: %w", err)}
		}
		notes, err := unescapeField(row[2])
		if err != nil {
			return nil, &rowError{line: line, err: fmt.Errorf("notes: %w", err)}
		}

		tasks = append(tasks, models.Task{ID: id, Title: title, Notes: notes, State: state})
	}
	return tasks, nil
}

func csvRowError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &rowError{line: pe.StartLine, err: pe.Err}
	}
	return err
}
