package pipeline

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/imgbudget/internal/ingest"
)

// imageMediaTypes maps recognized image extensions to their media types.
// mime.TypeByExtension covers the rest using the system tables.
var imageMediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
}

// LoadSource reads the file at path into a SourceImage. The declared
// media type comes from the extension, or from sniffing the first 512
// bytes when the extension is unknown.
func LoadSource(path string) (ingest.SourceImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ingest.SourceImage{}, fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	return ingest.SourceImage{
		Data:      data,
		MediaType: DetectMediaType(name, data),
		Filename:  name,
	}, nil
}

// DetectMediaType returns the media type a browser would declare for a
// file with this name and content.
func DetectMediaType(name string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := imageMediaTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	return http.DetectContentType(data)
}
