package service

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxStagedImageSize matches the backend's upload limit; oversized files are
// rejected at staging time instead of after a doomed upload.
const maxStagedImageSize = 10 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// StagedImage is a locally selected image not yet uploaded to the backend.
// Preview is the data-URL rendering of the file contents; staged files and
// their previews always travel together.
type StagedImage struct {
	// Path is the local filesystem path the file will be re-read from at
	// upload time.
	Path string

	// Name is the base file name sent as the multipart file name.
	Name string

	// Preview is a data URL of the file contents for local display.
	Preview string
}

// Staging accumulates image files selected on a vehicle form prior to
// submission. It enforces the staged-file cap and the backend's file rules
// client-side so a doomed batch is rejected before any network traffic.
//
// Not safe for concurrent use; a Staging belongs to exactly one form.
type Staging struct {
	max   int
	files []StagedImage
}

// NewStaging constructs an empty Staging capped at max files.
func NewStaging(max int) *Staging {
	return &Staging{max: max}
}

// Add stages every file in paths. If the running total would exceed the cap,
// [ErrTooManyStagedImages] is returned and no file is added; the same
// all-or-nothing rule applies to a file failing validation. Each accepted
// file gets a preview data URL built from its contents.
func (s *Staging) Add(paths ...string) error {
	if len(s.files)+len(paths) > s.max {
		return fmt.Errorf("%w: at most %d images", ErrTooManyStagedImages, s.max)
	}

	staged := make([]StagedImage, 0, len(paths))
	for _, path := range paths {
		img, err := stageFile(path)
		if err != nil {
			return err
		}
		staged = append(staged, img)
	}

	s.files = append(s.files, staged...)
	return nil
}

// RemoveAt drops the staged file at index i together with its preview,
// keeping the two lists in step. Out-of-range indices are ignored.
func (s *Staging) RemoveAt(i int) {
	if i < 0 || i >= len(s.files) {
		return
	}
	s.files = append(s.files[:i], s.files[i+1:]...)
}

// Files returns the staged files in selection order.
func (s *Staging) Files() []StagedImage {
	return s.files
}

// Len returns the number of staged files.
func (s *Staging) Len() int {
	return len(s.files)
}

// Reset drops all staged files.
func (s *Staging) Reset() {
	s.files = nil
}

func stageFile(path string) (StagedImage, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedImageExtensions[ext] {
		return StagedImage{}, fmt.Errorf("%w: %s", ErrUnsupportedImageType, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return StagedImage{}, fmt.Errorf("read staged image: %w", err)
	}
	if len(data) > maxStagedImageSize {
		return StagedImage{}, fmt.Errorf("%w: %s", ErrImageTooLarge, filepath.Base(path))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return StagedImage{}, fmt.Errorf("%w: %s detected as %s", ErrUnsupportedImageType, filepath.Base(path), contentType)
	}

	return StagedImage{
		Path:    path,
		Name:    filepath.Base(path),
		Preview: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}
