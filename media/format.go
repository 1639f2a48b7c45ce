package media

import (
	"path/filepath"
	"strings"
)

// ExtensionToFormat maps image file extensions (without dot) to format names.
var ExtensionToFormat = map[string]string{
	"jpg":  "JPEG",
	"jpeg": "JPEG",
	"png":  "PNG",
	"gif":  "GIF",
	"bmp":  "BMP",
	"tiff": "TIFF",
	"tif":  "TIFF",
	"webp": "WebP",
	"ico":  "ICO",
	"svg":  "SVG",
}

// DetectFormat returns the image format name for a file path based on its
// extension. Returns "Unknown" if the extension is not recognized. No
// content sniffing: the extension is the only signal.
func DetectFormat(filePath string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if format, ok := ExtensionToFormat[ext]; ok {
		return format
	}
	return "Unknown"
}
