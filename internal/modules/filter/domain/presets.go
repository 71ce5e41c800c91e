package domain

// Preset names a group of extensions usable as a single extension filter token.
type Preset string

const (
	PresetAudio    Preset = "audio"
	PresetVideo    Preset = "video"
	PresetImage    Preset = "image"
	PresetDocument Preset = "document"
)

// Presets maps each preset to the lowercase extensions it expands to.
var Presets = map[Preset][]string{
	PresetAudio:    {"mp3", "m4a", "flac", "ogg", "oga", "opus", "wav", "aac", "wma", "alac", "ape"},
	PresetVideo:    {"mp4", "mkv", "webm", "mov", "avi", "m4v"},
	PresetImage:    {"jpg", "jpeg", "png", "gif", "webp", "heic"},
	PresetDocument: {"pdf", "epub", "djvu", "doc", "docx", "txt", "zip", "rar", "7z"},
}
