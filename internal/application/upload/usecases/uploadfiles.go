package usecases

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/upload/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/config"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

const (
	FileTypeKYCDocs = "KYC_DOCS"
	FileTypeMedias  = "MEDIAS"

	defaultMaxFileSizeMB = 10
	defaultConcurrency   = 5
)

// ObjectStore writes objects to the document bucket.
type ObjectStore interface {
	ObjectKey(owner, category, filename string) string
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// FileInput is one uploaded file. Open is called at most once.
type FileInput struct {
	Filename    string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

type UploadCommand struct {
	Owner    string
	FileType string
	Files    []FileInput
}

// UploadFilesUseCase validates files and stores them under
// {base}/{owner}/{file type}/ with a random suffix on every name.
type UploadFilesUseCase struct {
	store         ObjectStore
	allowedExts   []string
	maxSizeMB     int
	maxConcurrent int
	logger        logger.Interface
}

func NewUploadFilesUseCase(store ObjectStore, cfg config.StorageConfig, logger logger.Interface) *UploadFilesUseCase {
	uc := &UploadFilesUseCase{
		store:         store,
		allowedExts:   cfg.NormalizedExtensions(),
		maxSizeMB:     cfg.MaxFileSizeMB,
		maxConcurrent: cfg.MaxConcurrentUploads,
		logger:        logger,
	}
	if uc.maxSizeMB <= 0 {
		uc.maxSizeMB = defaultMaxFileSizeMB
	}
	if uc.maxConcurrent <= 0 {
		uc.maxConcurrent = defaultConcurrency
	}
	return uc
}

// ExecuteSingle uploads the first file. A file that fails validation or
// storage is reported in the result, not as an error.
func (uc *UploadFilesUseCase) ExecuteSingle(ctx context.Context, cmd UploadCommand) (*dto.FileResultDTO, error) {
	if err := uc.checkCommand(cmd); err != nil {
		return nil, err
	}
	return uc.uploadOne(ctx, cmd.Owner, cmd.FileType, cmd.Files[0]), nil
}

// ExecuteMany uploads every file concurrently and summarises the outcomes
// in input order.
func (uc *UploadFilesUseCase) ExecuteMany(ctx context.Context, cmd UploadCommand) (*dto.MultiUploadDTO, error) {
	if err := uc.checkCommand(cmd); err != nil {
		return nil, err
	}

	results := make([]*dto.FileResultDTO, len(cmd.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.maxConcurrent)
	for i, f := range cmd.Files {
		g.Go(func() error {
			results[i] = uc.uploadOne(gctx, cmd.Owner, cmd.FileType, f)
			return nil
		})
	}
	_ = g.Wait()

	out := &dto.MultiUploadDTO{
		TotalFiles:     len(cmd.Files),
		SuccessfulURLs: []string{},
		FileData:       results,
	}
	for _, r := range results {
		if r.Success {
			out.SuccessfulUploads++
			out.SuccessfulURLs = append(out.SuccessfulURLs, *r.FileURL)
		} else {
			out.FailedUploads++
		}
	}

	uc.logger.Infow("files uploaded",
		"owner", utils.MaskEmail(cmd.Owner),
		"total", out.TotalFiles,
		"failed", out.FailedUploads,
	)
	return out, nil
}

func (uc *UploadFilesUseCase) checkCommand(cmd UploadCommand) error {
	if cmd.FileType != FileTypeKYCDocs && cmd.FileType != FileTypeMedias {
		return errors.NewValidationError(fmt.Sprintf("Invalid file_type, expected %s or %s", FileTypeKYCDocs, FileTypeMedias))
	}
	if strings.TrimSpace(cmd.Owner) == "" {
		return errors.NewValidationError("user_email is required")
	}
	for _, f := range cmd.Files {
		if strings.TrimSpace(f.Filename) != "" && f.Size > 0 {
			return nil
		}
	}
	return errors.NewValidationError("empty file, please provide a file")
}

func (uc *UploadFilesUseCase) uploadOne(ctx context.Context, owner, fileType string, f FileInput) *dto.FileResultDTO {
	result := &dto.FileResultDTO{Filename: f.Filename}
	fail := func(msg string) *dto.FileResultDTO {
		result.Error = &msg
		return result
	}

	if msg := uc.validate(f); msg != "" {
		uc.logger.Warnw("file validation failed", "filename", f.Filename, "reason", msg)
		return fail(msg)
	}

	key := uc.store.ObjectKey(owner, fileType, UniqueFilename(f.Filename))
	result.FileKey = &key

	body, err := f.Open()
	if err != nil {
		uc.logger.Errorw("failed to open uploaded file", "filename", f.Filename, "error", err)
		return fail(fmt.Sprintf("failed to read file: %v", err))
	}
	defer body.Close()

	url, err := uc.store.Put(ctx, key, body, f.Size, f.ContentType)
	if err != nil {
		uc.logger.Errorw("failed to upload file", "filename", f.Filename, "key", key, "error", err)
		return fail(fmt.Sprintf("file upload failed: %v", err))
	}

	size := f.Size
	result.Success = true
	result.FileURL = &url
	result.FileSize = &size
	return result
}

// validate returns a user facing reason, or "" when the file is acceptable.
func (uc *UploadFilesUseCase) validate(f FileInput) string {
	if strings.TrimSpace(f.Filename) == "" {
		return "No filename provided"
	}
	if limit := int64(uc.maxSizeMB) * 1024 * 1024; f.Size > limit {
		return fmt.Sprintf("File size %.2fMB exceeds %dMB limit", float64(f.Size)/(1024*1024), uc.maxSizeMB)
	}
	if len(uc.allowedExts) == 0 {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	if ext == "" {
		return "File has no extension"
	}
	for _, allowed := range uc.allowedExts {
		if ext == allowed {
			return ""
		}
	}
	return fmt.Sprintf("File extension '%s' not allowed. Allowed extensions: [%s]", ext, strings.Join(uc.allowedExts, ", "))
}

// UniqueFilename appends 8 random hex characters to the base name and
// lowercases the extension: "Scan.PDF" becomes "Scan_1a2b3c4d.pdf".
func UniqueFilename(filename string) string {
	filename = path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s%s", name, suffix, strings.ToLower(ext))
}
