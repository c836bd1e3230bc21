package histogram

import (
	"fmt"
	"strings"
	"time"

	"hotview/internal/exifinfo"
	"hotview/internal/metadata"
)

// commentWrapWidth keeps long user comments from stretching the
// overlay across the image.
const commentWrapWidth = 60

// BuildOverlay assembles the overlay text block: camera model and lens
// on their own lines, a combined exposure summary when exposure time,
// aperture and ISO are all present, the wrapped user comment in
// verbose mode, then the remaining label/value pairs padded to the
// longest label, with rating and notes (when set) plus the image name
// and a timestamp appended as synthetic entries.
func BuildOverlay(info map[string]string, rec metadata.Record, name string, now time.Time, verbose bool) string {
	entries := make(map[string]string, len(info)+4)
	for k, v := range info {
		entries[k] = v
	}
	if rec.Rating != metadata.DefaultRating {
		entries["Rating"] = rec.Rating
	}
	if rec.Notes != "" {
		entries["Notes"] = rec.Notes
	}
	entries["Name"] = name
	entries["Time"] = now.Format("15:04:05")

	var b strings.Builder
	longest := 0
	if model, ok := entries["Model"]; ok {
		b.WriteString(model + "\n")
		if len(model) > longest {
			longest = len(model)
		}
		delete(entries, "Model")
	}
	if lens, ok := entries["Lens"]; ok {
		b.WriteString(lens + "\n")
		if len(lens) > longest {
			longest = len(lens)
		}
		delete(entries, "Lens")
	}
	if hasAll(entries, "Aperture", "Exposure Time", "ISO") {
		fmt.Fprintf(&b, "%s at %s, ISO %s\n",
			entries["Exposure Time"], entries["Aperture"], entries["ISO"])
	}
	if comment, ok := entries["User Comment"]; ok {
		if verbose {
			b.WriteString(strings.Join(wrapText(comment, commentWrapWidth), "\n"))
		}
		delete(entries, "User Comment")
	}
	b.WriteString("\n")

	labels := labelOrder(entries)
	width := 0
	for _, label := range labels {
		if len(label) > width {
			width = len(label)
		}
	}
	if len(labels) == 0 {
		width = longest
	}
	width++

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%-*s %s", width, label+":", entries[label]))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// labelOrder lists the present labels in canonical display order.
func labelOrder(entries map[string]string) []string {
	order := append([]string{}, exifinfo.OverlayOrder...)
	order = append(order, "Rating", "Notes", "Name", "Time")
	var present []string
	for _, label := range order {
		if _, ok := entries[label]; ok {
			present = append(present, label)
		}
	}
	return present
}

func hasAll(entries map[string]string, keys ...string) bool {
	for _, k := range keys {
		if _, ok := entries[k]; !ok {
			return false
		}
	}
	return true
}

// wrapText splits text into lines no longer than width, breaking at
// spaces.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
