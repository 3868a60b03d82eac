package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdwiki/internal/domain"
)

func netStorage() *domain.Catalog {
	return &domain.Catalog{Categories: []domain.Category{
		{Name: "Net", Entries: []domain.Entry{{Title: "Ping", Command: "ping host"}}},
		{Name: "Storage", Entries: []domain.Entry{{Title: "Mount", Command: "mount /dev"}}},
	}}
}

func richCatalog() *domain.Catalog {
	return &domain.Catalog{Categories: []domain.Category{
		{Name: "Pods", Entries: []domain.Entry{
			{Title: "Create pod", Command: "k run nginx --image=nginx"},
			{Title: "Delete pod", Command: "k delete po NAME", Description: domain.StringPtr("Use --force for stuck pods")},
			{Title: "Logs", Command: "k logs POD"},
		}},
		{Name: "Services", Entries: []domain.Entry{
			{Title: "Expose deployment", Command: "k expose deploy web --port 80"},
			{Title: "Port forward", Command: "k port-forward svc/web 8080:80", Description: domain.StringPtr("Reach a POD locally")},
		}},
		{Name: "Empty", Entries: nil},
	}}
}

func titles(view domain.FilteredView) map[string][]string {
	out := map[string][]string{}
	for _, cat := range view {
		for _, e := range cat.Entries {
			out[cat.Name] = append(out[cat.Name], e.Entry.Title)
		}
	}
	return out
}

func TestScenarios(t *testing.T) {
	c := netStorage()

	t.Run("A query without selection", func(t *testing.T) {
		view := ComputeFilteredView(c, "ping", domain.NoSelection)
		require.Len(t, view, 1)
		assert.Equal(t, "Net", view[0].Name)
		require.Len(t, view[0].Entries, 1)
		assert.Equal(t, domain.Entry{Title: "Ping", Command: "ping host"}, view[0].Entries[0].Entry)
		assert.Equal(t, domain.EntryKey{Category: "Net", Index: 0}, view[0].Entries[0].Key)
	})

	t.Run("B selection without query", func(t *testing.T) {
		view := ComputeFilteredView(c, "", domain.Select("Storage"))
		require.Len(t, view, 1)
		assert.Equal(t, "Storage", view[0].Name)
		assert.Equal(t, "Mount", view[0].Entries[0].Entry.Title)
	})

	t.Run("C selection excludes the only match", func(t *testing.T) {
		view := ComputeFilteredView(c, "ping", domain.Select("Storage"))
		assert.Empty(t, view)
		assert.NotNil(t, view)
	})
}

func TestNoFiltersReturnsWholeCatalogMinusEmptyCategories(t *testing.T) {
	view := ComputeFilteredView(richCatalog(), "", domain.NoSelection)
	require.Len(t, view, 2)
	assert.Equal(t, []string{"Create pod", "Delete pod", "Logs"}, titles(view)["Pods"])
	assert.Equal(t, []string{"Expose deployment", "Port forward"}, titles(view)["Services"])
}

func TestQueryMatchesEveryField(t *testing.T) {
	tests := []struct {
		query string
		want  map[string][]string
	}{
		{"delete", map[string][]string{"Pods": {"Delete pod"}}},
		{"--IMAGE", map[string][]string{"Pods": {"Create pod"}}},
		{"stuck", map[string][]string{"Pods": {"Delete pod"}}},
		{"pod", map[string][]string{"Pods": {"Create pod", "Delete pod", "Logs"}, "Services": {"Port forward"}}},
		{"nothing-matches", map[string][]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := titles(ComputeFilteredView(richCatalog(), tt.query, domain.NoSelection))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhitespaceQueryIsOrdinaryText(t *testing.T) {
	view := ComputeFilteredView(richCatalog(), " ", domain.NoSelection)
	// every entry with a space somewhere in a field
	assert.Equal(t, 5, view.EntryCount())

	view = ComputeFilteredView(richCatalog(), "  ", domain.NoSelection)
	assert.Empty(t, view)
}

func TestUnknownSelectionYieldsEmptyView(t *testing.T) {
	view := ComputeFilteredView(richCatalog(), "", domain.Select("Gone"))
	assert.Empty(t, view)
}

func TestSelectedCategoryWithoutMatchesDisappears(t *testing.T) {
	view := ComputeFilteredView(richCatalog(), "expose", domain.Select("Pods"))
	assert.Empty(t, view)
}

func TestOrderAndKeysPreserved(t *testing.T) {
	view := ComputeFilteredView(richCatalog(), "k ", domain.NoSelection)
	keys := view.Keys()
	assert.Equal(t, []domain.EntryKey{
		{Category: "Pods", Index: 0},
		{Category: "Pods", Index: 1},
		{Category: "Pods", Index: 2},
		{Category: "Services", Index: 0},
		{Category: "Services", Index: 1},
	}, keys)

	view = ComputeFilteredView(richCatalog(), "logs", domain.NoSelection)
	assert.Equal(t, []domain.EntryKey{{Category: "Pods", Index: 2}}, view.Keys())
}

func TestUnicodeCaseFolding(t *testing.T) {
	c := &domain.Catalog{Categories: []domain.Category{
		{Name: "Ünicode", Entries: []domain.Entry{
			{Title: "STRASSE", Command: "echo ÄÖÜ"},
			{Title: "Σίσυφος", Command: "true"},
		}},
	}}
	assert.Equal(t, 1, ComputeFilteredView(c, "äöü", domain.NoSelection).EntryCount())
	assert.Equal(t, 1, ComputeFilteredView(c, "straße", domain.NoSelection).EntryCount())
	assert.Equal(t, 1, ComputeFilteredView(c, "ΣΊΣΥΦΟΣ", domain.NoSelection).EntryCount())
}

func TestComputeIsPureAndIdempotent(t *testing.T) {
	c := richCatalog()
	before := ComputeFilteredView(c, "", domain.NoSelection)

	first := ComputeFilteredView(c, "pod", domain.Select("Pods"))
	second := ComputeFilteredView(c, "pod", domain.Select("Pods"))
	assert.Equal(t, first, second)

	assert.Equal(t, before, ComputeFilteredView(c, "", domain.NoSelection))
	assert.Equal(t, richCatalog(), c)
}

// Every returned entry satisfies the predicate and no category is empty.
func TestViewInvariantsAcrossQueries(t *testing.T) {
	c := richCatalog()
	queries := []string{"", "p", "po", "POD", "k", " ", "80", "zzz", "-"}
	selections := []domain.Selection{domain.NoSelection, domain.Select("Pods"), domain.Select("Services"), domain.Select("Empty"), domain.Select("Gone")}

	for _, q := range queries {
		for _, sel := range selections {
			view := ComputeFilteredView(c, q, sel)
			for _, cat := range view {
				require.NotEmpty(t, cat.Entries, "query %q selection %s", q, sel)
				if name, ok := sel.Name(); ok {
					require.Equal(t, name, cat.Name)
				}
				for _, e := range cat.Entries {
					require.True(t, MatchesEntry(e.Entry, Fold(q)), "entry %q does not match %q", e.Entry.Title, q)
				}
			}
		}
	}
}

func TestNilCatalog(t *testing.T) {
	assert.Empty(t, ComputeFilteredView(nil, "x", domain.NoSelection))
}

func TestMatchRange(t *testing.T) {
	tests := []struct {
		text, query string
		want        string
		ok          bool
	}{
		{"Create Pod manifest", "pod", "Pod", true},
		{"k get po", "GET", "get", true},
		{"Größe", "GRÖSSE", "Größe", true},
		{"abc", "", "", false},
		{"abc", "x", "", false},
	}
	for _, tt := range tests {
		start, end, ok := MatchRange(tt.text, tt.query)
		assert.Equal(t, tt.ok, ok, tt.text)
		if ok {
			assert.Equal(t, tt.want, tt.text[start:end])
		}
	}
}

func TestFoldIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Fold("KUBECTL"), Fold("kubectl"))
	assert.True(t, strings.Contains(Fold("Port-Forward"), Fold("FORWARD")))
}
