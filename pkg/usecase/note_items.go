package usecase

import (
	"regexp"
	"strings"
)

// noteItem is one note extracted from an add_note payload before dedup.
type noteItem struct {
	Title    string
	Content  string
	Category string
}

var listMarker = regexp.MustCompile(`^\s*[-*•\d.)]+\s*`)

// splitNoteLines breaks a free-form blob into one title per line,
// stripping bullet and numbering prefixes.
func splitNoteLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		title := strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if title != "" {
			out = append(out, title)
		}
	}
	return out
}

// buildNoteItems collects note items from every field shape the assistant
// is known to produce for add_note: scalar title and note fields (unioned),
// list fields (notes, items, tasks, titles), and by_category maps. An
// item's own category wins over any batch-level fallback. Duplicates are
// dropped by case-insensitive title+category, first occurrence wins.
func buildNoteItems(data map[string]any) []noteItem {
	var items []noteItem
	add := func(batch []noteItem, category string) {
		for _, it := range batch {
			if it.Category == "" {
				it.Category = category
			}
			items = append(items, it)
		}
	}

	category, _ := parseString(data["category"])

	addScalar := func(s string) {
		batch := noteItemsFromValue(s)
		if len(batch) == 1 {
			batch[0].Content, _ = firstString(data, "content", "description")
		}
		add(batch, category)
	}
	if s, ok := firstString(data, "title", "text", "name"); ok {
		addScalar(s)
	}
	if s, ok := parseString(data["note"]); ok {
		addScalar(s)
	}

	for _, key := range []string{"notes", "items", "tasks", "titles"} {
		add(noteItemsFromValue(data[key]), category)
	}

	if byCat, ok := data["by_category"].(map[string]any); ok {
		for cat, v := range byCat {
			add(noteItemsFromValue(v), strings.TrimSpace(cat))
		}
	}

	return dedupNoteItems(items)
}

// noteItemsFromValue turns an arbitrary JSON value into note items:
// strings split into lines, arrays recursed element-wise, and objects
// read for title/content/category fields.
func noteItemsFromValue(v any) []noteItem {
	switch t := v.(type) {
	case string:
		var out []noteItem
		for _, title := range splitNoteLines(t) {
			out = append(out, noteItem{Title: title})
		}
		return out
	case []any:
		var out []noteItem
		for _, elem := range t {
			out = append(out, noteItemsFromValue(elem)...)
		}
		return out
	case map[string]any:
		title, ok := firstString(t, "title", "text", "name")
		if !ok {
			return nil
		}
		item := noteItem{Title: title}
		item.Content, _ = firstString(t, "content", "description")
		item.Category, _ = firstString(t, "category", "group")
		return []noteItem{item}
	}
	return nil
}

// firstString returns the first key that holds a non-empty string.
func firstString(data map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := parseString(data[key]); ok {
			return s, true
		}
	}
	return "", false
}

func dedupNoteItems(items []noteItem) []noteItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		key := strings.ToLower(it.Title) + "::" + strings.ToLower(it.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
