package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"goalcheer/internal/modules/goals/domain"
	"goalcheer/internal/platform/markdown"
	"goalcheer/internal/platform/slug"
)

// MarkdownExporter writes the goal list as a checklist note.
type MarkdownExporter struct {
	dir string
}

func NewMarkdownExporter(dir string) *MarkdownExporter {
	return &MarkdownExporter{dir: dir}
}

func (e *MarkdownExporter) Export(_ context.Context, title string, goals []domain.Goal, at time.Time) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	items := make([]markdown.ChecklistItem, 0, len(goals))
	for _, g := range goals {
		items = append(items, markdown.ChecklistItem{Text: g.Text, Done: g.Done})
	}
	doc := markdown.Document{
		Meta: map[string]any{
			"schema_version":   domain.SchemaVersion,
			"title":            title,
			"exported_at":      at.Format("2006-01-02T15:04:05Z07:00"),
			"total":            len(goals),
			"done":             domain.DoneCount(goals),
			"progress_percent": domain.Progress(goals),
		},
		Body: markdown.Checklist(title, items),
	}
	rendered, err := doc.Render()
	if err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, slug.Make(title)+".md")
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
