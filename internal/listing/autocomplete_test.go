package listing_test

import (
	"testing"

	"doctor-directory/internal/listing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest_BlankQuery(t *testing.T) {
	assert.Empty(t, listing.Suggest(largerDataset(), ""))
	assert.Empty(t, listing.Suggest(largerDataset(), "   "))
	assert.Empty(t, listing.Suggest(largerDataset(), "\t\n"))
}

func TestSuggest_CapsAtThreeInDatasetOrder(t *testing.T) {
	got := listing.Suggest(largerDataset(), "DR.")
	assert.Len(t, got, listing.MaxSuggestions)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestSuggest_SubstringMatch(t *testing.T) {
	got := listing.Suggest(largerDataset(), "an")
	assert.Equal(t, []string{"Dr. Anita Rao", "Dr. anil Kumar", "Dr. Rohan Anand"}, names(got))

	assert.Empty(t, listing.Suggest(largerDataset(), "xyz"))
}

func TestSearchBox_TypeCommitDismiss(t *testing.T) {
	var box listing.SearchBox

	cleared := box.Type(largerDataset(), "mee")
	assert.False(t, cleared)
	assert.Equal(t, []string{"Dr. Meera Iyer"}, names(box.Suggestions()))

	box.Dismiss()
	assert.Nil(t, box.Suggestions())
	assert.Equal(t, "mee", box.Text())

	box.Type(largerDataset(), "meer")
	assert.Len(t, box.Suggestions(), 1)

	committed := box.Commit("Dr. Meera Iyer")
	assert.Equal(t, "Dr. Meera Iyer", committed)
	assert.Nil(t, box.Suggestions())

	assert.True(t, box.Type(largerDataset(), "  "))
	assert.Nil(t, box.Suggestions())
}
