package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedType = errors.New("only image/png and image/jpeg are accepted")

// DiskStore keeps uploaded images as uuid-named files under a single
// directory and hands out storage-relative refs.
type DiskStore struct {
	dir string
	log *logrus.Logger
}

func NewDiskStore(dir string, log *logrus.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, log: log}, nil
}

// Store writes data to a new file and returns its ref.
func (s *DiskStore) Store(data []byte, mimeType string) (string, error) {
	var ext string
	switch mimeType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	default:
		return "", ErrUnsupportedType
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}

	return filepath.Join(filepath.Base(s.dir), name), nil
}

// ScheduleDelete removes the file behind ref without blocking the
// caller. Failures are logged only; a stale file on disk is an
// acceptable residual, a failed request is not.
//
// Refs are storage-relative: anything that resolves outside the
// images dir is ignored, so a crafted old_path cannot reach other
// files.
func (s *DiskStore) ScheduleDelete(ref string) {
	if ref == "" {
		return
	}

	path, ok := s.resolve(ref)
	if !ok {
		s.log.WithField("ref", ref).Warn("ignoring image ref outside the store")
		return
	}

	go func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.WithError(err).WithField("ref", ref).Warn("deleting image failed")
		}
	}()
}

// resolve maps a storage-relative ref onto the filesystem and reports
// whether the result stays inside the images dir.
func (s *DiskStore) resolve(ref string) (string, bool) {
	base := filepath.Clean(s.dir)
	path := filepath.Clean(filepath.Join(filepath.Dir(base), ref))

	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}
