package repo

import (
	"csvvault/app/models"

	"gorm.io/gorm"
)

type FileRepository struct{ db *gorm.DB }

func NewFileRepository(db *gorm.DB) *FileRepository { return &FileRepository{db: db} }

func (r *FileRepository) Create(f *models.CSVFile) error { return r.db.Create(f).Error }

func (r *FileRepository) FindByID(id uint) (*models.CSVFile, error) {
	var f models.CSVFile
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FileRepository) ListAll() ([]models.CSVFile, error) {
	var files []models.CSVFile
	return files, r.db.Order("id").Find(&files).Error
}

func (r *FileRepository) ListByOwner(ownerID uint) ([]models.CSVFile, error) {
	var files []models.CSVFile
	return files, r.db.Where("owner_id = ?", ownerID).Order("id").Find(&files).Error
}

func (r *FileRepository) UpdateFilename(id uint, filename string) error {
	return r.db.Model(&models.CSVFile{}).Where("id = ?", id).Update("filename", filename).Error
}

func (r *FileRepository) Delete(id uint) error {
	return r.db.Delete(&models.CSVFile{}, id).Error
}

func (r *FileRepository) DeleteByOwner(ownerID uint) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&models.CSVFile{}).Error
}
