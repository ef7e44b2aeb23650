package dto

// FileResultDTO is the outcome of one file in a multi-file upload.
type FileResultDTO struct {
	Filename string  `json:"filename"`
	Success  bool    `json:"success"`
	FileURL  *string `json:"file_url"`
	FileKey  *string `json:"file_key"`
	Error    *string `json:"error"`
	FileSize *int64  `json:"file_size"`
}

type SingleUploadDTO struct {
	Filename string `json:"filename"`
	FileURL  string `json:"file_url"`
}

type MultiUploadDTO struct {
	TotalFiles        int              `json:"total_files"`
	SuccessfulUploads int              `json:"successful_uploads"`
	FailedUploads     int              `json:"failed_uploads"`
	SuccessfulURLs    []string         `json:"successful_urls"`
	FileData          []*FileResultDTO `json:"file_data"`
}
