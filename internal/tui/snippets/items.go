package snippets

import (
	"github.com/snipstash/snip/internal/rank"
)

type resultItem struct {
	res rank.Result
}

func (i resultItem) Title() string {
	return i.res.Entry.DisplayText
}

func (i resultItem) Description() string {
	if i.res.Create {
		return "Create snippet file and open it in the editor."
	}
	if i.res.Entry.Preview == "" {
		return "Text snippet"
	}
	return "Text snippet – " + i.res.Entry.Preview
}

// FilterValue is unused; ranking happens through the query input rather
// than the list's built-in filter.
func (i resultItem) FilterValue() string {
	return i.res.Entry.DisplayText
}
