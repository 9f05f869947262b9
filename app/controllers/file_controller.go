package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"csvvault/app/dto"
	"csvvault/app/middleware"
	"csvvault/app/services"
)

type FileController struct{ Files *services.FileService }

func NewFileController(files *services.FileService) *FileController {
	return &FileController{Files: files}
}

func (c *FileController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	u := middleware.CurrentUser(r.Context())
	f, err := c.Files.Upload(u, header.Filename, file)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.FileFromModel(f))
}

func (c *FileController) List(w http.ResponseWriter, r *http.Request) {
	u := middleware.CurrentUser(r.Context())
	files, err := c.Files.List(u)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FilesFromModels(files))
}

func (c *FileController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	u := middleware.CurrentUser(r.Context())
	f, err := c.Files.Get(u, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FileFromModel(f))
}

func (c *FileController) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	u := middleware.CurrentUser(r.Context())
	rc, f, err := c.Files.Open(u, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.Filename+`"`)
	_, _ = io.Copy(w, rc)
}

func (c *FileController) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	var req dto.RenameFileRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u := middleware.CurrentUser(r.Context())
	f, err := c.Files.Rename(u, id, req.Filename)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FileFromModel(f))
}

func (c *FileController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}
	u := middleware.CurrentUser(r.Context())
	if err := c.Files.Delete(u, id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "file deleted"})
}
