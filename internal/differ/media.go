package differ

import (
	"path"
	"strings"
)

// mediaExtensions is the fixed set of non-content file extensions excluded
// from comparison: images, video, audio and binary document formats.
// It is deliberately not configurable.
var mediaExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".svg": true, ".webp": true, ".ico": true,
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true, ".flv": true,
	".mkv": true, ".webm": true,
	".mp3": true, ".ogg": true, ".wav": true, ".flac": true, ".aac": true,
	".pdf": true, ".zip": true,
}

// IsMediaPath reports whether the comparison key points at a media file,
// based on the extension of its final path segment. A query suffix, when
// present, is ignored for the check.
func IsMediaPath(key string) bool {
	pathname := key
	if i := strings.IndexByte(pathname, '?'); i >= 0 {
		pathname = pathname[:i]
	}

	ext := strings.ToLower(path.Ext(pathname))
	return mediaExtensions[ext]
}
