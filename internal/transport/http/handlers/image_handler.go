package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vedran77/feedline/internal/storage"
	"github.com/vedran77/feedline/internal/transport/http/middleware"
)

const maxImageSize = 8 << 20 // 8 MiB

// ImageHandler accepts multipart image uploads and hands back the
// storage-relative ref the client then attaches to a post.
type ImageHandler struct {
	store *storage.DiskStore
	log   *logrus.Logger
}

func NewImageHandler(store *storage.DiskStore, log *logrus.Logger) *ImageHandler {
	return &ImageHandler{store: store, log: log}
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAuthResult(r.Context())
	if !caller.Authenticated {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		h.log.WithError(err).Error("reading upload failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	ref, err := h.store.Store(data, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			writeError(w, http.StatusUnprocessableEntity, "UNSUPPORTED_TYPE", "Only PNG and JPEG images are accepted")
		} else {
			h.log.WithError(err).Error("storing upload failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	// Replacing an image: the superseded file goes away best-effort.
	if oldPath := r.FormValue("old_path"); oldPath != "" {
		h.store.ScheduleDelete(oldPath)
	}

	writeJSON(w, http.StatusCreated, map[string]string{"path": ref})
}
