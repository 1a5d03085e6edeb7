// Package filesystem stores uploaded documents such as candidate resumes.
package filesystem

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// Store saves and reads back files by key.
type Store interface {
	Save(ctx context.Context, key string, contentType string, body io.Reader) error
	Read(ctx context.Context, key string, outStream io.Writer) error
	Delete(ctx context.Context, key string) error
}

var resumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// ResumeKey builds a fresh object key for an uploaded resume named
// filename and returns it with the content type to store it under.
func ResumeKey(filename string) (key string, contentType string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := resumeTypes[ext]
	if !ok {
		return "", "", ErrUnsupportedFile
	}
	return "resumes/" + uuid.NewString() + ext, contentType, nil
}

// ContentType returns the type a stored resume key should be served as.
func ContentType(key string) string {
	if ct, ok := resumeTypes[strings.ToLower(path.Ext(key))]; ok {
		return ct
	}
	return "application/octet-stream"
}
