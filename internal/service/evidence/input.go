package evidence

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

const (
	maxFilenameLength  = 255
	defaultContentType = "application/octet-stream"
)

// ListInput holds optional list filters.
type ListInput struct {
	Search string
	CaseID *uuid.UUID
}

// UploadInput describes one file upload and its metadata.
type UploadInput struct {
	Filename       string
	ContentType    string
	Size           int64
	Body           io.Reader
	CaseID         *uuid.UUID
	Description    *string
	Tags           []string
	ChainOfCustody json.RawMessage
}

func (i UploadInput) validate(maxBytes int64) error {
	var errs []domain.FieldError

	name := cleanFilename(i.Filename)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "filename required"})
	} else if len(name) > maxFilenameLength {
		errs = append(errs, domain.FieldError{Field: "file", Message: "filename too long"})
	}
	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty file"})
	} else if i.Size > maxBytes {
		errs = append(errs, domain.FieldError{
			Field:   "file",
			Message: fmt.Sprintf("exceeds the %d MiB limit", maxBytes>>20),
		})
	}
	if len(i.ChainOfCustody) > 0 && !json.Valid(i.ChainOfCustody) {
		errs = append(errs, domain.FieldError{Field: "chain_of_custody", Message: "invalid JSON"})
	}
	for _, t := range i.Tags {
		if strings.TrimSpace(t) == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "empty tag"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// cleanFilename drops any directory part a client may have sent.
func cleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func (i UploadInput) contentType() string {
	if ct := strings.TrimSpace(i.ContentType); ct != "" {
		return ct
	}
	return defaultContentType
}
