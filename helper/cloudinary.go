package helper

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore is the external image hosting contract the bill flow and the
// reaper depend on. Backed by Cloudinary in production, by a fake in tests.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (url string, id string, err error)
	Destroy(ctx context.Context, publicID string) error
}

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cld *cloudinary.Cloudinary) *CloudinaryStore {
	return &CloudinaryStore{cld: cld}
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	// Cloudinary reports "not found" in the body; an already-deleted image is
	// not an error for our callers.
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q", result.Result)
	}
	return nil
}
