package usecases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/config"
	apperrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failFor string

	active    atomic.Int32
	maxActive atomic.Int32
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) ObjectKey(owner, category, filename string) string {
	return "docs/" + owner + "/" + strings.ToLower(category) + "/" + filename
}

func (s *fakeStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	n := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		m := s.maxActive.Load()
		if n <= m || s.maxActive.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	if s.failFor != "" && strings.Contains(key, s.failFor) {
		return "", errors.New("access denied")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return "https://bucket.s3.me-central-1.amazonaws.com/" + key, nil
}

func file(name, content string) FileInput {
	return FileInput{
		Filename: name,
		Size:     int64(len(content)),
		Open:     func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewBufferString(content)), nil },
	}
}

func newUseCase(store ObjectStore, exts string, maxMB, concurrency int) *UploadFilesUseCase {
	return NewUploadFilesUseCase(store, config.StorageConfig{
		AllowedExtensions:    exts,
		MaxFileSizeMB:        maxMB,
		MaxConcurrentUploads: concurrency,
	}, logger.NewNopLogger())
}

func TestUniqueFilename(t *testing.T) {
	got := UniqueFilename("Passport Scan.PDF")
	assert.Regexp(t, regexp.MustCompile(`^Passport Scan_[0-9a-f]{8}\.pdf$`), got)
	assert.NotEqual(t, got, UniqueFilename("Passport Scan.PDF"))

	assert.Regexp(t, `^front_[0-9a-f]{8}\.png$`, UniqueFilename(`C:\scans\front.png`))
	assert.Regexp(t, `^README_[0-9a-f]{8}$`, UniqueFilename("README"))
}

func TestUploadFilesUseCase_ExecuteSingle(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store, "pdf, .PNG", 1, 2)

	result, err := uc.ExecuteSingle(context.Background(), UploadCommand{
		Owner:    "investor@goldvault.test",
		FileType: FileTypeKYCDocs,
		Files:    []FileInput{file("passport.PDF", "%PDF-1.7")},
	})

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "passport.PDF", result.Filename)
	assert.Regexp(t, `^docs/investor@goldvault.test/kyc_docs/passport_[0-9a-f]{8}\.pdf$`, *result.FileKey)
	assert.Equal(t, "https://bucket.s3.me-central-1.amazonaws.com/"+*result.FileKey, *result.FileURL)
	assert.Equal(t, int64(8), *result.FileSize)
	assert.Nil(t, result.Error)
	assert.Equal(t, []byte("%PDF-1.7"), store.objects[*result.FileKey])
}

func TestUploadFilesUseCase_Validation(t *testing.T) {
	big := FileInput{Filename: "video.png", Size: 3*1024*1024 + 512*1024, Open: func() (io.ReadCloser, error) {
		t.Fatal("oversized file must not be read")
		return nil, nil
	}}

	tests := []struct {
		name string
		in   FileInput
		want string
	}{
		{"too large", big, "File size 3.50MB exceeds 2MB limit"},
		{"no extension", file("passport", "x"), "File has no extension"},
		{"extension not allowed", file("run.EXE", "x"), "File extension '.exe' not allowed. Allowed extensions: [.pdf, .png]"},
		{"blank filename", file("  ", "x"), "No filename provided"},
	}

	uc := newUseCase(newFakeStore(), "pdf,png", 2, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := uc.uploadOne(context.Background(), "a@b.test", FileTypeMedias, tt.in)
			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
			assert.Equal(t, tt.want, *result.Error)
			assert.Nil(t, result.FileURL)
		})
	}
}

func TestUploadFilesUseCase_AnyExtensionWhenUnrestricted(t *testing.T) {
	uc := newUseCase(newFakeStore(), "", 0, 0)

	result := uc.uploadOne(context.Background(), "a@b.test", FileTypeMedias, file("notes", "x"))

	assert.True(t, result.Success)
}

func TestUploadFilesUseCase_RejectsBadCommand(t *testing.T) {
	uc := newUseCase(newFakeStore(), "", 1, 1)

	tests := []struct {
		name string
		cmd  UploadCommand
	}{
		{"no files", UploadCommand{Owner: "a@b.test", FileType: FileTypeMedias}},
		{"only empty files", UploadCommand{Owner: "a@b.test", FileType: FileTypeMedias, Files: []FileInput{file("a.pdf", "")}}},
		{"unknown file type", UploadCommand{Owner: "a@b.test", FileType: "SELFIES", Files: []FileInput{file("a.pdf", "x")}}},
		{"missing owner", UploadCommand{FileType: FileTypeMedias, Files: []FileInput{file("a.pdf", "x")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ExecuteSingle(context.Background(), tt.cmd)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}

	_, err := uc.ExecuteMany(context.Background(), tests[0].cmd)
	assert.Equal(t, "empty file, please provide a file", apperrors.GetAppError(err).Message)
}

func TestUploadFilesUseCase_ExecuteMany(t *testing.T) {
	store := newFakeStore()
	store.failFor = "broken"
	uc := newUseCase(store, "pdf,png", 1, 2)

	files := []FileInput{
		file("a.pdf", "a"),
		file("b.png", "b"),
		file("bad.exe", "c"),
		file("broken.pdf", "d"),
		file("e.pdf", "e"),
		file("f.png", "f"),
	}
	result, err := uc.ExecuteMany(context.Background(), UploadCommand{
		Owner:    "investor@goldvault.test",
		FileType: FileTypeMedias,
		Files:    files,
	})

	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalFiles)
	assert.Equal(t, 4, result.SuccessfulUploads)
	assert.Equal(t, 2, result.FailedUploads)
	assert.Len(t, result.SuccessfulURLs, 4)
	require.Len(t, result.FileData, 6)
	for i, f := range files {
		assert.Equal(t, f.Filename, result.FileData[i].Filename)
	}
	assert.False(t, result.FileData[2].Success)
	assert.Nil(t, result.FileData[2].FileKey)
	assert.False(t, result.FileData[3].Success)
	assert.NotNil(t, result.FileData[3].FileKey)
	assert.Contains(t, *result.FileData[3].Error, "access denied")
	assert.LessOrEqual(t, store.maxActive.Load(), int32(2))
}
