package lukaz

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"
)

// ===================================================================
// Files
// ===================================================================
// Uploads and deletions both target /file/{boardId}

// Upload is the payload of UploadFile. It is implemented by StoragePath and
// LocalFile only.
type Upload interface {
	validation.Validatable

	body(fs afero.Fs) (interface{}, error)
}

// StoragePath references a file already in the platform's storage bucket.
// It is sent as {"filePath": Path}.
type StoragePath struct {
	Path string `json:"filePath"`
}

// Validate checks that the path is set.
func (s StoragePath) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Path, validation.Required),
	)
}

func (s StoragePath) body(afero.Fs) (interface{}, error) {
	return s, nil
}

// LocalFile uploads the contents of a local file as a multipart "file" part.
type LocalFile struct {
	// Path is read through Config.Fs.
	Path string

	// Name is the file name reported to the server. Default: base of Path.
	Name string
}

// Validate checks that the path is set.
func (l LocalFile) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Path, validation.Required),
	)
}

func (l LocalFile) body(fs afero.Fs) (interface{}, error) {
	info, err := fs.Stat(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat upload: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("upload %s is a directory", l.Path)
	}

	data, err := afero.ReadFile(fs, l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	name := l.Name
	if name == "" {
		name = filepath.Base(l.Path)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write multipart part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &encodedBody{
		contentType: w.FormDataContentType(),
		data:        buf.Bytes(),
	}, nil
}

var (
	_ Upload = StoragePath{}
	_ Upload = LocalFile{}
)

// UploadFile attaches a file to a board. The upload is validated and, for a
// LocalFile, read before any request is made.
func (c *Client) UploadFile(ctx context.Context, board string, upload Upload) (*Ack, error) {
	path, err := entityPath("/file/", boardID(board))
	if err != nil {
		return nil, err
	}

	if upload == nil {
		return nil, fmt.Errorf("upload: %w", validation.ErrRequired)
	}
	if err := upload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid upload: %w", err)
	}

	body, err := upload.body(c.config.Fs)
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, body, &ack); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &ack, nil
}

// DeleteFile removes a document from a board by file name.
func (c *Client) DeleteFile(ctx context.Context, board, fileName string) (*Ack, error) {
	path, err := entityPath("/file/", boardID(board))
	if err != nil {
		return nil, err
	}

	if err := validation.Validate(fileName, validation.Required); err != nil {
		return nil, fmt.Errorf("file name: %w", err)
	}

	requestBody := map[string]string{
		"fileName": fileName,
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, requestBody, &ack); err != nil {
		return nil, fmt.Errorf("failed to delete file: %w", err)
	}

	return &ack, nil
}
