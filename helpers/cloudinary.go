package helpers

import (
	"context"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadFile streams a multipart file to Cloudinary and returns its URL.
func UploadFile(file multipart.File, fileHeader *multipart.FileHeader, folder string) (string, error) {
	// Reset file pointer before upload
	file.Seek(0, 0)

	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	uploadResult, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
		PublicID:     fileHeader.Filename,
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
