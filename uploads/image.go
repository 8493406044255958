package uploads

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// Image is an uploaded photo normalized from either transport: a binary
// multipart part or a legacy base64 data URL. Bytes are held in memory for
// the duration of the request (they are re-used as email attachments).
type Image struct {
	FileName    string
	ContentType string
	Data        []byte
}

func (img Image) Size() int64 { return int64(len(img.Data)) }

// Ext returns a filename extension for the image, preferring the original
// name and falling back to the content type.
func (img Image) Ext() string {
	if ext := strings.ToLower(filepath.Ext(img.FileName)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(img.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

func ReadFileHeader(fh *multipart.FileHeader) (Image, error) {
	f, err := fh.Open()
	if err != nil {
		return Image{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Image{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename)))
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	return Image{FileName: fh.Filename, ContentType: ct, Data: data}, nil
}

// DecodeDataURL parses a "data:image/png;base64,...." string from the legacy
// JSON submission path.
func DecodeDataURL(raw string) (Image, error) {
	if !strings.HasPrefix(raw, "data:") {
		return Image{}, fmt.Errorf("not a data url")
	}
	comma := strings.Index(raw, ",")
	if comma < 0 {
		return Image{}, fmt.Errorf("malformed data url")
	}

	meta := raw[len("data:"):comma]
	payload := raw[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return Image{}, fmt.Errorf("unsupported data url encoding")
	}
	ct := strings.TrimSuffix(meta, ";base64")
	if ct == "" {
		ct = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decode data url: %w", err)
	}

	return Image{ContentType: ct, Data: data}, nil
}

// TotalSize sums image byte sizes across a submission.
func TotalSize(images []Image) int64 {
	var total int64
	for _, img := range images {
		total += img.Size()
	}
	return total
}
