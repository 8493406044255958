package wizard

import "fmt"

// Upload limits. The byte budget tracks the platform body-size ceiling the
// submission will hit upstream; the guard is the only defense against
// oversized uploads, so rejections happen here, before any network call.
const (
	MaxQuoteImages   = 3
	MaxInquiryImages = 5
	MaxUploadMB      = 4
	MaxUploadBytes   = MaxUploadMB << 20
)

// File is a photo selected for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) Size() int64 { return int64(len(f.Data)) }

// Guard accumulates a photo selection against a file-count cap and a
// cumulative byte budget. An over-limit Add rejects the entire addition and
// leaves the existing selection untouched.
type Guard struct {
	maxFiles int
	maxBytes int64
	files    []File
}

func NewGuard(maxFiles int, maxBytes int64) *Guard {
	return &Guard{maxFiles: maxFiles, maxBytes: maxBytes}
}

// Add appends the given files, or none of them: the whole addition is
// rejected with a single consolidated message when it would exceed either
// limit.
func (g *Guard) Add(files ...File) error {
	if len(g.files)+len(files) > g.maxFiles {
		return fmt.Errorf("Maximum %d images allowed", g.maxFiles)
	}

	total := g.TotalSize()
	for _, f := range files {
		total += f.Size()
	}
	if total > g.maxBytes {
		return fmt.Errorf("Total upload size exceeds %dMB limit. Please use smaller images.", g.maxBytes>>20)
	}

	g.files = append(g.files, files...)
	return nil
}

// Remove drops the file at index; out-of-range indexes are ignored so
// removal always succeeds.
func (g *Guard) Remove(index int) {
	if index < 0 || index >= len(g.files) {
		return
	}
	g.files = append(g.files[:index], g.files[index+1:]...)
}

func (g *Guard) Count() int { return len(g.files) }

func (g *Guard) TotalSize() int64 {
	var total int64
	for _, f := range g.files {
		total += f.Size()
	}
	return total
}

func (g *Guard) Files() []File {
	out := make([]File, len(g.files))
	copy(out, g.files)
	return out
}

// FormatFileSize renders a byte count the way the upload UI shows it.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 MB"
	}
	mb := float64(bytes) / (1 << 20)
	if mb < 0.1 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	}
	return fmt.Sprintf("%.1f MB", mb)
}
