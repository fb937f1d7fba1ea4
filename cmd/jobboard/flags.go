package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"jobmarket-client/internal/matching"
	"jobmarket-client/internal/models"
)

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// mergeCriteria overlays command-line filters on the board's current
// criteria. Empty flags keep what the board already has.
func mergeCriteria(current matching.FilterCriteria, tags []string, search, location string) matching.FilterCriteria {
	next := matching.FilterCriteria{
		Tags:     append([]string(nil), current.Tags...),
		Search:   current.Search,
		Location: current.Location,
	}
	if len(tags) > 0 {
		next.Tags = tags
	}
	if search != "" {
		next.Search = search
	}
	if location != "" {
		next.Location = location
	}
	return next
}

func readUpload(path string) (models.Upload, error) {
	if path == "" {
		return models.Upload{}, fmt.Errorf("%w: --file is required", errUsage)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return models.Upload{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}
