package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

const (
	webpMaxWidth  = 1600
	webpMaxHeight = 1600
	webpQuality   = 80
)

// ConvertToWebP decode jpg/png/webp lalu re-encode jadi WebP lossy,
// di-resize dulu bila melebihi batas dimensi.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	all := new(bytes.Buffer)
	if _, err := all.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	img, err := decodeImage(all.Bytes(), filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > webpMaxWidth || b.Dy() > webpMaxHeight {
		img = imaging.Fit(img, webpMaxWidth, webpMaxHeight, imaging.Lanczos)
	}

	out, err := webp.EncodeRGBA(img, webpQuality)
	if err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out, nil
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".webp" {
		if img, err := webp.Decode(bytes.NewReader(all)); err == nil {
			return img, nil
		}
	}
	img, _, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung (pakai jpg/png/webp)")
	}
	return img, nil
}

// UploadAsWebP re-encode gambar multipart jadi WebP lalu upload dengan
// ekstensi .webp ke subdir tertentu.
func (s *OSSService) UploadAsWebP(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 5MB")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "tidak didukung") {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Format gambar tidak didukung (pakai jpg/png/webp)")
		}
		return "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(base + ".webp")
	if dir != "" {
		key = strings.Trim(dir, "/") + "/" + key
	}

	if err := s.UploadStream(ctx, key, webpData, "image/webp"); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}
