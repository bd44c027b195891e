package lukaz

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFile_LocalFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/report.pdf", []byte("%PDF-1.4 test"), 0o644))

	var (
		gotName    string
		gotContent []byte
		gotKey     string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		assert.Equal(t, "/file/board-1", r.URL.Path)

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotName = header.Filename
		gotContent, _ = io.ReadAll(file)
		_, _ = io.WriteString(w, "true")
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIKey: "key", BaseURL: server.URL, Fs: fs})
	require.NoError(t, err)

	ack, err := client.UploadFile(context.Background(), "board-1", LocalFile{Path: "/docs/report.pdf"})
	require.NoError(t, err)
	assert.True(t, ack.OK)
	assert.Equal(t, "key", gotKey)
	assert.Equal(t, "report.pdf", gotName)
	assert.Equal(t, "%PDF-1.4 test", string(gotContent))
}

func TestUploadFile_LocalFileCustomName(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tmp123", []byte("hello"), 0o600))

	var gotName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotName = header.Filename
		_, _ = io.WriteString(w, "true")
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIKey: "key", BaseURL: server.URL, Fs: fs})
	require.NoError(t, err)

	_, err = client.UploadFile(context.Background(), "b", LocalFile{Path: "tmp123", Name: "notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", gotName)
}

func TestUploadFile_RejectedBeforeRequest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/a/dir", 0o755))

	tests := []struct {
		name    string
		upload  Upload
		wantErr string
	}{
		{"nil upload", nil, "cannot be blank"},
		{"empty storage path", StoragePath{}, "cannot be blank"},
		{"empty local path", LocalFile{}, "cannot be blank"},
		{"missing local file", LocalFile{Path: "/nope.pdf"}, "failed to stat upload"},
		{"directory", LocalFile{Path: "/a/dir"}, "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, http.StatusOK, "true")
			client, err := NewClient(&Config{APIKey: "key", BaseURL: api.URL, Fs: fs})
			require.NoError(t, err)

			_, err = client.UploadFile(context.Background(), "board-1", tt.upload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, api.Requests())
		})
	}
}
