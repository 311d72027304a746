package oss

import (
	"context"
	"log"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Foto entitas (inventaris, pengurus, konten) selalu di-re-encode jadi WebP;
file lain (mis. hasil export) diupload apa adanya.
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	UploadBytes(ctx context.Context, dir, filename string, data []byte, contentType string) (publicURL string, err error)

	// ReplaceImage upload foto baru dulu; kalau sukses, foto lama dihapus
	// best-effort (gagal hapus hanya dicatat di log, tidak di-rollback).
	ReplaceImage(ctx context.Context, dir string, fh *multipart.FileHeader, oldURL string) (publicURL string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	url, err := b.svc.UploadAsWebP(ctx, dir, fh)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (b *OSSBlobService) UploadBytes(ctx context.Context, dir, filename string, data []byte, contentType string) (string, error) {
	key, err := b.svc.UploadBytesToDir(ctx, dir, filename, data, contentType)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) ReplaceImage(ctx context.Context, dir string, fh *multipart.FileHeader, oldURL string) (string, error) {
	url, err := b.UploadImage(ctx, dir, fh)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(oldURL) != "" {
		if delErr := b.svc.DeleteByPublicURL(ctx, oldURL); delErr != nil {
			log.Printf("[OSS] gagal hapus foto lama %s: %v", oldURL, delErr)
		}
	}
	return url, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal hapus object")
	}
	return nil
}

// ---------------------------------------------------------------
// Singleton dari ENV untuk dipakai controller
// ---------------------------------------------------------------

var (
	blobOnce sync.Once
	blobSvc  *OSSBlobService
	blobErr  error
)

func GetBlobService() (BlobService, error) {
	blobOnce.Do(func() {
		blobSvc, blobErr = NewOSSBlobServiceFromEnv("uploads")
	})
	if blobErr != nil {
		return nil, blobErr
	}
	return blobSvc, nil
}

// IsMultipart menilai apakah request bertipe multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}
