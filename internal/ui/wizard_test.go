package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderSummary(t *testing.T) {
	t.Run("complete form lists every field", func(t *testing.T) {
		fields := []Field{
			{Label: "Title", Value: "Desk Lamp"},
			{Label: "Images", Value: "https://img/a.png"},
		}
		output := stripANSI(RenderSummary("Create new product", fields))

		assert.Equal(t, "┌ Create new product\n│\n│ ◇ Title · Desk Lamp\n│ ◇ Images · https://img/a.png\n│\n└\n", output)
	})

	t.Run("empty required field is flagged", func(t *testing.T) {
		fields := []Field{{Label: "Description", Missing: true}}
		output := stripANSI(RenderSummary("Create new product", fields))

		assert.Contains(t, output, "│ ✗ Description · required\n")
		assert.NotContains(t, output, "◇")
	})

	t.Run("rejected value is shown as invalid", func(t *testing.T) {
		fields := []Field{{Label: "Price", Value: "NaN", Missing: true}}
		output := stripANSI(RenderSummary("Edit product", fields))

		assert.Contains(t, output, "│ ✗ Price · NaN (invalid)\n")
	})

	t.Run("bottom border counts missing fields", func(t *testing.T) {
		fields := []Field{
			{Label: "Title", Value: "Mug"},
			{Label: "Price", Missing: true},
			{Label: "Images", Missing: true},
		}
		output := stripANSI(RenderSummary("Create new product", fields))

		assert.True(t, strings.HasSuffix(output, "└ 2 required field(s) missing\n"))
	})
}

func TestProductTheme(t *testing.T) {
	theme := ProductTheme()

	assert.Equal(t, " ✗", stripANSI(theme.Focused.ErrorIndicator.String()))
	assert.Equal(t, " ✗", stripANSI(theme.Blurred.ErrorIndicator.String()))
}

func TestRenderSuccess(t *testing.T) {
	t.Run("headline and checks", func(t *testing.T) {
		output := stripANSI(RenderSuccess("Created", "Desk Lamp", "#51", []string{"Price $12.5", "Category Home"}))

		assert.Contains(t, output, "┌ ◆ Created Desk Lamp\n")
		assert.Contains(t, output, "│ #51\n")
		assert.Contains(t, output, "│ ✓ Price $12.5\n")
		assert.Contains(t, output, "│ ✓ Category Home\n")
		assert.True(t, strings.HasSuffix(output, "└\n"))
	})

	t.Run("subtitle line omitted when empty", func(t *testing.T) {
		output := stripANSI(RenderSuccess("Updated", "Mug", "", nil))

		assert.Equal(t, "┌ ◆ Updated Mug\n│\n└\n", output)
	})
}
