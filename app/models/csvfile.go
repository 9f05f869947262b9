package models

import "time"

// CSVFile is the metadata row for one uploaded file. The bytes themselves
// live in the blob store under StoredName.
type CSVFile struct {
	ID          uint   `gorm:"primaryKey"`
	OwnerID     uint   `gorm:"index;not null"`
	Owner       User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Filename    string `gorm:"size:255;not null"`
	StoredName  string `gorm:"uniqueIndex;size:255;not null"`
	Size        int64
	RowCount    int
	ColumnCount int
	UploadTime  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
