package content

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib := Default()
	require.Len(t, lib.Portals, 4)

	want := []struct {
		kind     Kind
		label    string
		col, row int
		color    color.RGBA
	}{
		{Experience, "Experience", 10, 2, color.RGBA{0xff, 0x6b, 0x6b, 0xff}},
		{Projects, "Projects", 17, 7, color.RGBA{0x4e, 0xcd, 0xc4, 0xff}},
		{Skills, "Skills", 10, 12, color.RGBA{0xff, 0xe6, 0x6d, 0xff}},
		{About, "About", 2, 7, color.RGBA{0xa2, 0x9b, 0xfe, 0xff}},
	}
	for i, w := range want {
		p := lib.Portals[i]
		assert.Equal(t, w.kind, p.Kind)
		assert.Equal(t, w.label, p.Label)
		assert.Equal(t, w.col, p.Col)
		assert.Equal(t, w.row, p.Row)
		assert.Equal(t, w.color, p.Color)
	}

	for _, k := range Kinds() {
		page := lib.Page(k)
		require.NotNil(t, page, k.String())
		assert.Equal(t, k, page.Kind())
		assert.NotEmpty(t, Paragraphs(page))
	}
}

func TestLoadRejectsDuplicatePortal(t *testing.T) {
	doc := `
portals:
  - {id: experience, col: 1, row: 1, color: "#ffffff"}
  - {id: experience, col: 2, row: 2, color: "#ffffff"}
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "portals[1].id", verr.Field)
}

func TestLoadRejectsMissingPortal(t *testing.T) {
	doc := `
portals:
  - {id: experience, col: 1, row: 1, color: "#ffffff"}
`
	_, err := Load(strings.NewReader(doc))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "projects")
}

func TestLoadRejectsUnknownPortal(t *testing.T) {
	doc := `
portals:
  - {id: contact, col: 1, row: 1, color: "#ffffff"}
`
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoadRejectsBadColor(t *testing.T) {
	doc := `
portals:
  - {id: experience, col: 1, row: 1, color: "orange"}
`
	_, err := Load(strings.NewReader(doc))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "portals[0].color", verr.Field)
}

func TestLoadRejectsPortalOffFloor(t *testing.T) {
	for _, tile := range []string{"col: 0, row: 5", "col: 19, row: 5", "col: 5, row: 14", "col: 25, row: 2", "col: 3, row: -1"} {
		doc := "portals:\n  - {id: experience, " + tile + `, color: "#ffffff"}` + "\n"
		_, err := Load(strings.NewReader(doc))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, tile)
		assert.Equal(t, "portals[0]", verr.Field, tile)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.ID())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	none, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindNone, none)
	assert.False(t, none.Valid())

	_, err = ParseKind("contact")
	assert.Error(t, err)
}

func TestParagraphsAbout(t *testing.T) {
	page := &AboutPage{
		Title:     "About",
		Bio:       "bio",
		Education: []Education{{Year: "2016", Text: "BSc"}},
		Interests: "chess",
		Links:     []Link{{Platform: "GitHub", Label: "@me"}},
	}
	got := Paragraphs(page)
	assert.Equal(t, []string{
		"bio", "", "# Education", "2016  BSc",
		"", "# Interests", "chess",
		"", "# On the Web", "GitHub: @me",
	}, got)
}
