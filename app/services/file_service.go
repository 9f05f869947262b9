package services

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"csvvault/app/models"
	"csvvault/app/policy"
	"csvvault/app/repo"
	"csvvault/app/storage"

	"gorm.io/gorm"
)

const DefaultMaxUploadBytes = 250_000_000

type FileService struct {
	files    *repo.FileRepository
	blobs    *storage.Disk
	maxBytes int64
}

func NewFileService(files *repo.FileRepository, blobs *storage.Disk, maxBytes int64) *FileService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &FileService{files: files, blobs: blobs, maxBytes: maxBytes}
}

// Upload validates and stores one CSV for owner: blob to disk, metadata row
// to the database. The size cap is enforced on the actual byte stream, not
// the declared length.
func (s *FileService) Upload(owner *models.User, filename string, src io.Reader) (*models.CSVFile, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return nil, ErrInvalidFile
	}

	limited := &io.LimitedReader{R: src, N: s.maxBytes + 1}
	storedName, size, err := s.blobs.Save(filename, limited)
	if err != nil {
		return nil, err
	}
	if size > s.maxBytes {
		_ = s.blobs.Delete(storedName)
		return nil, ErrFileTooLarge
	}

	rows, cols, err := s.countCSV(storedName)
	if err != nil {
		_ = s.blobs.Delete(storedName)
		return nil, ErrInvalidFile
	}

	f := &models.CSVFile{
		OwnerID:     owner.ID,
		Filename:    filepath.Base(filename),
		StoredName:  storedName,
		Size:        size,
		RowCount:    rows,
		ColumnCount: cols,
		UploadTime:  time.Now(),
	}
	if err := s.files.Create(f); err != nil {
		_ = s.blobs.Delete(storedName)
		return nil, err
	}
	return f, nil
}

// List returns every file for admins and the caller's own files otherwise.
func (s *FileService) List(current *models.User) ([]models.CSVFile, error) {
	if policy.RequireAdmin(current) {
		return s.files.ListAll()
	}
	return s.files.ListByOwner(current.ID)
}

func (s *FileService) Get(current *models.User, id uint) (*models.CSVFile, error) {
	f, err := s.files.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanAccess(current, f.OwnerID) {
		return nil, ErrForbidden
	}
	return f, nil
}

// Open returns the blob contents for download, under the same access rule
// as Get.
func (s *FileService) Open(current *models.User, id uint) (io.ReadCloser, *models.CSVFile, error) {
	f, err := s.Get(current, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.blobs.Open(f.StoredName)
	if err != nil {
		return nil, nil, err
	}
	return rc, f, nil
}

func (s *FileService) Rename(current *models.User, id uint, filename string) (*models.CSVFile, error) {
	f, err := s.Get(current, id)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, ErrInvalidFile
	}
	if err := s.files.UpdateFilename(f.ID, filepath.Base(filename)); err != nil {
		return nil, err
	}
	return s.files.FindByID(f.ID)
}

func (s *FileService) Delete(current *models.User, id uint) error {
	f, err := s.Get(current, id)
	if err != nil {
		return err
	}
	if err := s.files.Delete(f.ID); err != nil {
		return err
	}
	return s.blobs.Delete(f.StoredName)
}

// DeleteAllForOwner removes rows and blobs for one owner. Callers have
// already made the admin decision; there is no policy check here.
func (s *FileService) DeleteAllForOwner(ownerID uint) error {
	files, err := s.files.ListByOwner(ownerID)
	if err != nil {
		return err
	}
	if err := s.files.DeleteByOwner(ownerID); err != nil {
		return err
	}
	for i := range files {
		_ = s.blobs.Delete(files[i].StoredName)
	}
	return nil
}

func (s *FileService) countCSV(storedName string) (rows, cols int, err error) {
	rc, err := s.blobs.Open(storedName)
	if err != nil {
		return 0, 0, err
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, 0, err
		}
		if rows == 0 {
			cols = len(record)
		}
		rows++
	}
	return rows, cols, nil
}
