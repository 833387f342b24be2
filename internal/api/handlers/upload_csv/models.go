package upload_csv

// UploadResponse результат успешного импорта файла
type UploadResponse struct {
	Success   string `json:"success"`
	TotalRows int    `json:"total_rows"`
}
