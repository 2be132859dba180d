// Package file holds the thin I/O collaborators: reading song files and
// deriving companion paths. No grammar or analysis logic lives here.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aguilarcarboni/musical-grammar/constants"
)

// ReadSong returns the raw text of a song file.
func ReadSong(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read song file: %w", err)
	}
	return string(data), nil
}

// SongPaths expands a target into song file paths. An explicit file stands
// alone; a directory contributes its song files, skipping generated notes
// files so a directory validates cleanly after analyze/export runs in it.
func SongPaths(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}
	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, entry := range entries {
		if !entry.IsDir() && isSongFile(entry.Name()) {
			res = append(res, filepath.Join(target, entry.Name()))
		}
	}
	return res, nil
}

func isSongFile(name string) bool {
	if strings.HasSuffix(name, constants.NotesFileSuffix) {
		return false
	}
	ext := filepath.Ext(name)
	for _, songExt := range constants.SongFileExts {
		if ext == songExt {
			return true
		}
	}
	return false
}

// BaseName is the file name without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NotesPath derives the notes-file path next to the input song.
func NotesPath(songPath string) string {
	dir := filepath.Dir(songPath)
	return filepath.Join(dir, BaseName(songPath)+constants.NotesFileSuffix)
}

// WriteNotes writes the notes lines, one per chord occurrence.
func WriteNotes(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0644)
}
