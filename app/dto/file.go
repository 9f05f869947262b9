package dto

import (
	"time"

	"csvvault/app/models"
)

type File struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"owner_id"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	RowCount    int       `json:"row_count"`
	ColumnCount int       `json:"column_count"`
	UploadTime  time.Time `json:"upload_time"`
}

func FileFromModel(f *models.CSVFile) File {
	return File{
		ID:          f.ID,
		OwnerID:     f.OwnerID,
		Filename:    f.Filename,
		Size:        f.Size,
		RowCount:    f.RowCount,
		ColumnCount: f.ColumnCount,
		UploadTime:  f.UploadTime,
	}
}

func FilesFromModels(fs []models.CSVFile) []File {
	out := make([]File, 0, len(fs))
	for i := range fs {
		out = append(out, FileFromModel(&fs[i]))
	}
	return out
}

type RenameFileRequest struct {
	Filename string `json:"filename"`
}
