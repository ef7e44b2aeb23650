package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	uploaddto "github.com/bdorababu707/goldvault-investment-module/internal/application/upload/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/upload/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type uploadFilesUseCase interface {
	ExecuteSingle(ctx context.Context, cmd usecases.UploadCommand) (*uploaddto.FileResultDTO, error)
	ExecuteMany(ctx context.Context, cmd usecases.UploadCommand) (*uploaddto.MultiUploadDTO, error)
}

type UploadHandler struct {
	uploadUC uploadFilesUseCase
	logger   logger.Interface
}

func NewUploadHandler(uploadUC uploadFilesUseCase, logger logger.Interface) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

type uploadForm struct {
	FileType  string `form:"file_type" binding:"required,oneof=KYC_DOCS MEDIAS"`
	UserEmail string `form:"user_email" binding:"required,email"`
}

// UploadFile handles POST /v1/upload/file/
func (h *UploadHandler) UploadFile(c *gin.Context) {
	var form uploadForm
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "empty file, please provide a file")
		return
	}

	result, err := h.uploadUC.ExecuteSingle(c.Request.Context(), usecases.UploadCommand{
		Owner:    form.UserEmail,
		FileType: form.FileType,
		Files:    []usecases.FileInput{toFileInput(fh)},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Success {
		utils.ErrorResponseWithData(c, http.StatusBadRequest, "upload failed, check data for more details",
			gin.H{"error": result.Error})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "file uploaded successfully", gin.H{
		"upload_data": uploaddto.SingleUploadDTO{Filename: result.Filename, FileURL: *result.FileURL},
	})
}

// UploadFiles handles POST /v1/upload/files/
func (h *UploadHandler) UploadFiles(c *gin.Context) {
	var form uploadForm
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	mf, err := c.MultipartForm()
	if err != nil || len(mf.File["files"]) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "empty file list")
		return
	}

	files := make([]usecases.FileInput, 0, len(mf.File["files"]))
	for _, fh := range mf.File["files"] {
		files = append(files, toFileInput(fh))
	}

	result, err := h.uploadUC.ExecuteMany(c.Request.Context(), usecases.UploadCommand{
		Owner:    form.UserEmail,
		FileType: form.FileType,
		Files:    files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "files uploaded successfully", gin.H{"upload_data": result})
}

func toFileInput(fh *multipart.FileHeader) usecases.FileInput {
	return usecases.FileInput{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
