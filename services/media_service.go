package services

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/disintegration/imaging"
)

const thumbnailWidth = 320

var supportedMediaTypes = map[string]bool{
	".png":  true,
	".jpeg": true,
	".jpg":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".mov":  true,
}

type MediaService interface {
	UploadIssueMedia(file multipart.File, fileHeader *multipart.FileHeader) (*models.MediaUploadResult, error)
}

type mediaService struct {
	Config    *config.Config
	mediaRepo db.MediaRepository
}

func NewMediaService(mediaRepo db.MediaRepository, conf *config.Config) MediaService {
	return &mediaService{Config: conf, mediaRepo: mediaRepo}
}

// UploadIssueMedia pushes the file to S3 and, for images, a downscaled
// thumbnail next to it. A failed thumbnail is logged and skipped; the
// original upload alone is enough to serve mediaUrl.
func (s *mediaService) UploadIssueMedia(file multipart.File, fileHeader *multipart.FileHeader) (*models.MediaUploadResult, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !supportedMediaTypes[ext] {
		return nil, errs.New(fmt.Sprintf("unsupported media type %s", ext), http.StatusBadRequest)
	}

	mediaURL, err := s.mediaRepo.UploadMediaToS3(file, fileHeader, s.Config.AwsBucket, "issues")
	if err != nil {
		return nil, errs.StorageFailure(err)
	}

	result := &models.MediaUploadResult{MediaURL: mediaURL}

	if isImage(ext) {
		// UploadMediaToS3 consumed and closed the stream; reopen for the
		// thumbnail pass.
		src, err := fileHeader.Open()
		if err != nil {
			log.Printf("thumbnail reopen failed for %s: %v", fileHeader.Filename, err)
			return result, nil
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			log.Printf("thumbnail read failed for %s: %v", fileHeader.Filename, err)
			return result, nil
		}

		thumbURL, err := s.uploadThumbnail(content, path.Base(mediaURL))
		if err != nil {
			log.Printf("thumbnail generation failed for %s: %v", fileHeader.Filename, err)
		} else {
			result.ThumbnailURL = thumbURL
		}
	}

	return result, nil
}

func (s *mediaService) uploadThumbnail(content []byte, key string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return "", err
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return "", err
	}

	thumbKey := fmt.Sprintf("thumbnails/%s.jpg", strings.TrimSuffix(filepath.Base(key), filepath.Ext(key)))
	return s.mediaRepo.UploadBytesToS3(buf.Bytes(), "image/jpeg", s.Config.AwsBucket, thumbKey)
}

func isImage(ext string) bool {
	switch ext {
	case ".png", ".jpeg", ".jpg", ".gif", ".webp":
		return true
	}
	return false
}
