// Package explain renders short explanations of the sampling concepts the
// explorer visualizes.
package explain

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed topics/*.md
var topics embed.FS

// Topics lists the available topic names in alphabetical order.
func Topics() []string {
	entries, err := topics.ReadDir("topics")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Markdown returns the raw markdown of topic.
func Markdown(topic string) (string, error) {
	topic = strings.ReplaceAll(strings.ToLower(topic), "-", "_")
	data, err := topics.ReadFile("topics/" + topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q (available: %s)", topic, strings.Join(Topics(), ", "))
	}
	return string(data), nil
}

// Render returns topic rendered for a terminal of the given width. style is a
// glamour style name ("dark", "light", "notty", ...); empty picks one from the
// terminal background.
func Render(topic, style string, width int) (string, error) {
	md, err := Markdown(topic)
	if err != nil {
		return "", err
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", topic, err)
	}
	return out, nil
}
