package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UploadImage — принимает multipart-файл и сохраняет его под
// сгенерированным именем (uuid + исходное расширение).
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "file is required", h.logger)
		return
	}
	defer file.Close()

	filename := uuid.New().String() + filepath.Ext(header.Filename)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.fileStorage.UploadFile(r.Context(), filename, file, contentType); err != nil {
		h.logger.Error("failed to store uploaded image", "filename", filename, "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"filename": filename}, h.logger)
}

// GetImage — отдает содержимое загруженного файла побайтово.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	reader, err := h.fileStorage.GetFile(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			respondWithError(w, http.StatusNotFound, "image not found", h.logger)
			return
		}
		h.logger.Error("failed to read image", "filename", name, "error", err)
		respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("failed to write image response", "filename", name, "error", err)
	}
}

// UpdateImage — заменяет содержимое файла и/или переименовывает его.
// Нужен хотя бы один из: multipart-файл "file" или поле "new_filename".
func (h *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	file, header, fileErr := r.FormFile("file")
	newName := r.FormValue("new_filename")

	if fileErr != nil && newName == "" {
		respondWithError(w, http.StatusBadRequest, "file or new_filename is required", h.logger)
		return
	}

	if fileErr == nil {
		defer file.Close()

		// замена содержимого требует существующего файла
		existing, err := h.fileStorage.GetFile(r.Context(), name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
				respondWithError(w, http.StatusNotFound, "image not found", h.logger)
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
			return
		}
		existing.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if err := h.fileStorage.UploadFile(r.Context(), name, file, contentType); err != nil {
			h.logger.Error("failed to replace image", "filename", name, "error", err)
			respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
			return
		}
	}

	if newName != "" {
		if err := h.fileStorage.RenameFile(r.Context(), name, newName); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				respondWithError(w, http.StatusNotFound, "image not found", h.logger)
			case errors.Is(err, domain.ErrValidation):
				respondWithError(w, http.StatusBadRequest, "invalid filename", h.logger)
			default:
				h.logger.Error("failed to rename image", "filename", name, "error", err)
				respondWithError(w, http.StatusInternalServerError, err.Error(), h.logger)
			}
			return
		}
		name = newName
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"filename": name}, h.logger)
}
