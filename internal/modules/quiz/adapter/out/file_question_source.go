package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	quizout "quizterm/internal/modules/quiz/port/out"
	apperrors "quizterm/internal/platform/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type FileQuestionSource struct{}

func NewFileQuestionSource() quizout.QuestionSource {
	return &FileQuestionSource{}
}

// Load decodes the whole file before returning any record, so a structural
// error anywhere discards everything.
func (s *FileQuestionSource) Load(_ context.Context, path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %s: %w", apperrors.ErrIO, path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", apperrors.ErrFormat, path)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrFormat, path, err)
	}

	records, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected an array of questions", apperrors.ErrFormat, path)
	}
	return records, nil
}

func decodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: unexpected data after top-level value")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func decodeYAML(data []byte) (any, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
