package measure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

func TestMeasureHeight_EmptyText(t *testing.T) {
	m := NewHeuristicMeasurer()
	assert.Zero(t, m.MeasureHeight("", 11, 170, 1.5))
}

func TestMeasureHeight_SingleLine(t *testing.T) {
	m := NewHeuristicMeasurer()

	// 10 chars at 11pt (2.2mm/char) in 170mm: 77 chars per line, so one line
	height := m.MeasureHeight("ten chars.", 11, 170, 1.5)
	assert.InDelta(t, 11*PtToMM*1.5, height, 0.001)
}

func TestMeasureHeight_WrapsToMultipleLines(t *testing.T) {
	m := NewHeuristicMeasurer()

	// 100 chars at 11pt in 170mm: 77 chars per line -> 2 lines
	text := strings.Repeat("a", 100)
	height := m.MeasureHeight(text, 11, 170, 1.5)
	assert.InDelta(t, 2*11*PtToMM*1.5, height, 0.001)
}

func TestMeasureHeight_NarrowWidthFallsBackToOneLine(t *testing.T) {
	m := NewHeuristicMeasurer()

	// Width narrower than one character: fall back to a single line's height
	height := m.MeasureHeight("anything", 24, 1, 1.3)
	assert.InDelta(t, 24*PtToMM, height, 0.001)
}

func TestMeasureHeight_UntabulatedFontSizeUsesDefaultWidth(t *testing.T) {
	m := NewHeuristicMeasurer()

	// 10pt is not in the table; it should behave like the 2.2mm default
	text := strings.Repeat("x", 100)
	h10 := m.MeasureHeight(text, 10, 170, 1.4)
	assert.InDelta(t, 2*10*PtToMM*1.4, h10, 0.001)
}

func TestMeasureHeight_CountsRunesNotBytes(t *testing.T) {
	m := NewHeuristicMeasurer()

	// Same character count, different byte counts: heights must match
	ascii := strings.Repeat("e", 40)
	accented := strings.Repeat("é", 40)
	cjk := strings.Repeat("学", 40)

	ha := m.MeasureHeight(ascii, 11, 170, 1.5)
	assert.InDelta(t, ha, m.MeasureHeight(accented, 11, 170, 1.5), 0.001)
	assert.InDelta(t, ha, m.MeasureHeight(cjk, 11, 170, 1.5), 0.001)
}

func TestMeasureHeight_MonotoneInTextLength(t *testing.T) {
	m := NewHeuristicMeasurer()

	a := strings.Repeat("word ", 20)
	b := a + " and then some extra trailing text that only adds content"

	ha := m.MeasureHeight(a, 11, 170, 1.5)
	hb := m.MeasureHeight(b, 11, 170, 1.5)
	assert.GreaterOrEqual(t, hb, ha)
}

func TestListHeight_SumsItemsPlusGaps(t *testing.T) {
	m := NewHeuristicMeasurer()
	items := []string{"first achievement", "second achievement"}

	expected := m.MeasureHeight(items[0], 11, 160, 1.5) + 2 +
		m.MeasureHeight(items[1], 11, 160, 1.5) + 2
	assert.InDelta(t, expected, ListHeight(m, items, 11, 160, 1.5), 0.001)
}

func TestListHeight_EmptyList(t *testing.T) {
	m := NewHeuristicMeasurer()
	assert.Zero(t, ListHeight(m, nil, 11, 160, 1.5))
}

func TestHeaderHeight_NameOnly(t *testing.T) {
	m := NewHeuristicMeasurer()
	details := &types.PersonalDetails{FullName: "Jane Doe"}

	// name line + 5mm spacing + 20mm padding
	expected := m.MeasureHeight("Jane Doe", 24, 170, 1.3) + 5 + 20
	assert.InDelta(t, expected, HeaderHeight(m, details, 170), 0.001)
}

func TestHeaderHeight_FullDetails(t *testing.T) {
	m := NewHeuristicMeasurer()
	details := &types.PersonalDetails{
		FullName:        "Jane Doe",
		DesiredPosition: "Staff Engineer",
		Email:           "jane@example.com",
		Phone:           "+49 30 1234567",
		Location:        "Berlin",
	}

	// three contacts group into two lines at 11pt
	nameH := m.MeasureHeight(details.FullName, 24, 170, 1.3) + 5
	titleH := m.MeasureHeight(details.DesiredPosition, 16, 170, 1.3) + 3
	contactH := 2*(11*PtToMM*1.4) + 5

	assert.InDelta(t, nameH+titleH+contactH+20, HeaderHeight(m, details, 170), 0.001)
}

func TestHeaderHeight_NilDetails(t *testing.T) {
	m := NewHeuristicMeasurer()
	assert.Zero(t, HeaderHeight(m, nil, 170))
}
