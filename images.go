package folio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	thumbnailSize    = 150
	jpegQuality      = 80
	maxThumbnailSrc  = 20 << 20 // 20MB
	thumbnailsRoute  = "/public/thumbnails"
	thumbnailsPrefix = thumbnailsRoute + "/"
)

// makeThumbnail decodes src, center-crops it to a square and scales it to
// thumbnailSize x thumbnailSize, returning JPEG bytes.
func makeThumbnail(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(io.LimitReader(src, maxThumbnailSrc))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	crop := image.Rect(
		b.Min.X+(b.Dx()-side)/2,
		b.Min.Y+(b.Dy()-side)/2,
		b.Min.X+(b.Dx()-side)/2+side,
		b.Min.Y+(b.Dy()-side)/2+side,
	)

	dst := image.NewRGBA(image.Rect(0, 0, thumbnailSize, thumbnailSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// writeThumbnail renders the image at srcPath into dir as <slug>.jpg and
// returns its public URL.
func writeThumbnail(srcPath, dir, slug string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := makeThumbnail(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", srcPath, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create thumbnails dir: %w", err)
	}
	name := slug + ".jpg"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}
	return thumbnailsPrefix + name, nil
}
