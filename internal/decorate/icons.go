package decorate

import (
	"path/filepath"
	"strings"

	"github.com/harrison/treels/internal/models"
)

const (
	folderIcon   = "📁 "
	documentIcon = "📄 "
)

// extensionIcons maps lower-case extensions (without the dot) to glyphs.
// Every glyph carries its trailing space.
var extensionIcons = map[string]string{
	"txt":  "📄 ",
	"rs":   "🦀 ",
	"py":   "🐍 ",
	"js":   "🟨 ",
	"go":   "🐹 ",
	"html": "🌐 ",
	"css":  "🎨 ",
	"json": "🔧 ",
	"yaml": "🔧 ",
	"yml":  "🔧 ",
	"md":   "📝 ",
	"sh":   "🐚 ",
	"png":  "🖼️ ",
	"jpg":  "🖼️ ",
	"jpeg": "🖼️ ",
	"gif":  "🖼️ ",
	"mp3":  "🎵 ",
	"wav":  "🎵 ",
	"ogg":  "🎵 ",
	"mp4":  "🎥 ",
	"avi":  "🎥 ",
	"mkv":  "🎥 ",
	"pdf":  "📚 ",
	"zip":  "🗜️ ",
	"tar":  "🗜️ ",
	"gz":   "🗜️ ",
	"exe":  "⚙️ ",
}

// IconFor returns the glyph for an entry regardless of icon policy.
func IconFor(e models.Entry) string {
	if e.IsDir() {
		return folderIcon
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.FileName()), "."))
	if icon, ok := extensionIcons[ext]; ok {
		return icon
	}
	return documentIcon
}
