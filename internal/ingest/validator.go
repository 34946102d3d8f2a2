package ingest

import (
	"mime"
	"strings"
)

// vectorTypes are image/* media types that carry no bitmap.
var vectorTypes = map[string]bool{
	"image/svg+xml": true,
}

// Validate checks the declared media type and the filename of src.
// It never looks at the payload.
func Validate(src SourceImage) error {
	if !IsRasterMediaType(src.MediaType) {
		return ErrInvalidType(src.MediaType)
	}
	if !ValidName(src.Filename) {
		return ErrInvalidName(src.Filename)
	}
	return nil
}

// WithinBudget reports whether src can be returned without re-encoding.
func WithinBudget(src SourceImage) bool {
	return src.Size() <= Budget
}

// IsRasterMediaType reports whether mediaType names a bitmap image type.
func IsRasterMediaType(mediaType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		mt = parsed
	}
	if !strings.HasPrefix(mt, "image/") {
		return false
	}
	return !vectorTypes[mt]
}

// ValidName reports whether the stem of name is non-empty and made only of
// ASCII letters, digits, '_' and '-'.
func ValidName(name string) bool {
	stem := Stem(name)
	if stem == "" {
		return false
	}
	for i := 0; i < len(stem); i++ {
		c := stem[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Stem returns name without its final extension. An extension is a
// trailing ".x" where x is non-empty and holds no '.' or '/'.
func Stem(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return name
	}
	if strings.ContainsRune(name[i+1:], '/') {
		return name
	}
	return name[:i]
}

// ReplaceExt returns name with its extension replaced by ext (without dot).
// The extension is appended when name has none.
func ReplaceExt(name, ext string) string {
	return Stem(name) + "." + ext
}
