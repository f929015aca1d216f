package listing

import (
	"strings"

	"doctor-directory/internal/domain/entity"
)

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 3

// Suggest returns up to MaxSuggestions doctors whose name contains query,
// ignoring case, in dataset order. Blank queries suggest nothing.
func Suggest(dataset []entity.Doctor, query string) []entity.Doctor {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var out []entity.Doctor
	for _, d := range dataset {
		if !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		out = append(out, d)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// SearchBox is the transient state of the search control: what the user has
// typed and the suggestions shown under it. None of it is part of the
// committed FilterSortState.
type SearchBox struct {
	text        string
	suggestions []entity.Doctor
	open        bool
}

// Type records new input and refreshes suggestions against dataset. It
// reports true when the input is blank, which clears the committed search.
func (b *SearchBox) Type(dataset []entity.Doctor, text string) (clearSearch bool) {
	b.text = text
	b.suggestions = Suggest(dataset, text)
	b.open = len(b.suggestions) > 0
	return strings.TrimSpace(text) == ""
}

// Commit accepts a selected suggestion or the submitted text and returns the
// search text to commit.
func (b *SearchBox) Commit(text string) string {
	b.text = text
	b.suggestions = nil
	b.open = false
	return text
}

// Dismiss hides the suggestion list, e.g. on a click outside the control.
func (b *SearchBox) Dismiss() {
	b.open = false
}

func (b *SearchBox) Text() string {
	return b.text
}

// Suggestions returns the visible suggestions, nil while dismissed.
func (b *SearchBox) Suggestions() []entity.Doctor {
	if !b.open {
		return nil
	}
	return b.suggestions
}
