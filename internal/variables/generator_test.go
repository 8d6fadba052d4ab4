package variables

import (
	"errors"
	"strings"
	"testing"

	"github.com/Justice-Caban/Irodori/internal/color"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateDefaults(t *testing.T, input palette.Palette) Set {
	t.Helper()
	set, err := Generate(palette.Resolve(input))
	require.NoError(t, err)
	return set
}

func TestGenerate_NamesAndOrder(t *testing.T) {
	set := generateDefaults(t, nil)

	want := []string{
		"color-base",
		"color-contrast",
		"background-color",
		"text-color",
		"toolbar-background-color",
		"toolbar-text-color",
		"item-background-color",
		"item-text-color",
	}
	for _, role := range palette.Roles() {
		prefix := "color-" + string(role)
		want = append(want,
			prefix,
			prefix+"-rgb",
			prefix+"-contrast",
			prefix+"-contrast-rgb",
			prefix+"-shade",
			prefix+"-tint",
		)
	}

	assert.Equal(t, want, set.Names())
	assert.Len(t, set, 62)
}

func TestGenerate_DefaultsPassThrough(t *testing.T) {
	set := generateDefaults(t, palette.Palette{})

	tests := map[string]string{
		"color-light":      "#f4f5f8",
		"color-dark":       "#222428",
		"color-base":       "#f4f5f8",
		"color-contrast":   "#222428",
		"background-color": "#f4f5f8",
		"text-color":       "#222428",
		"color-primary":    "#3880ff",
		"color-medium-rgb": "152,154,162",
	}
	for name, want := range tests {
		got, ok := set.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestGenerate_PrimaryOverride(t *testing.T) {
	set := generateDefaults(t, palette.Palette{palette.Primary: "#ff0000"})

	primary, _ := set.Lookup("color-primary")
	assert.Equal(t, "#ff0000", primary)

	rgb, _ := set.Lookup("color-primary-rgb")
	assert.Equal(t, "255,0,0", rgb)

	base := color.MustParse(rgb)
	shadeValue, _ := set.Lookup("color-primary-shade")
	tintValue, _ := set.Lookup("color-primary-tint")

	assert.Less(t, color.MustParse(shadeValue).Lightness(), base.Lightness())
	assert.Greater(t, color.MustParse(tintValue).Lightness(), base.Lightness())

	// other roles keep their defaults
	secondary, _ := set.Lookup("color-secondary")
	assert.Equal(t, "#0cd1e8", secondary)
}

func TestGenerate_RawValuePreserved(t *testing.T) {
	set := generateDefaults(t, palette.Palette{palette.Danger: "rgb(200, 10, 10)"})

	danger, _ := set.Lookup("color-danger")
	assert.Equal(t, "rgb(200, 10, 10)", danger)

	rgb, _ := set.Lookup("color-danger-rgb")
	assert.Equal(t, "200,10,10", rgb)
}

func TestGenerate_ContrastMatchesRGB(t *testing.T) {
	set := generateDefaults(t, nil)

	for _, role := range palette.Roles() {
		name := "color-" + string(role)

		raw, _ := set.Lookup(name)
		contrast, _ := set.Lookup(name + "-contrast")
		contrastRGB, _ := set.Lookup(name + "-contrast-rgb")

		c := color.MustParse(contrast)
		assert.Equal(t, c.RGBString(), contrastRGB, role)
		assert.NotEqual(t, color.MustParse(raw).IsDark(), c.IsDark(), role)
	}
}

func TestGenerate_StructuralSurfaces(t *testing.T) {
	set := generateDefaults(t, nil)
	light := color.MustParse("#f4f5f8")
	dark := color.MustParse("#222428")

	tests := map[string]string{
		"toolbar-background-color": light.Contrast(0.1).String(),
		"toolbar-text-color":       dark.Contrast(0.1).String(),
		"item-background-color":    light.Contrast(0.3).String(),
		"item-text-color":          dark.Contrast(0.3).String(),
	}
	for name, want := range tests {
		got, _ := set.Lookup(name)
		assert.Equal(t, want, got, name)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Render(generateDefaults(t, nil), DefaultPrefix)
	second := Render(generateDefaults(t, nil), DefaultPrefix)
	assert.Equal(t, first, second)
}

func TestGenerate_InvalidColor(t *testing.T) {
	for _, role := range palette.Roles() {
		t.Run(string(role), func(t *testing.T) {
			set, err := Generate(palette.Resolve(palette.Palette{role: "notacolor"}))
			assert.Nil(t, set)
			require.Error(t, err)
			assert.True(t, errors.Is(err, color.ErrInvalidColor))

			var colorErr *color.InvalidColorError
			require.True(t, errors.As(err, &colorErr))
			assert.Equal(t, "notacolor", colorErr.Value)
		})
	}
}

func TestRender(t *testing.T) {
	set := Set{
		{Name: "color-primary", Value: "#3880ff"},
		{Name: "color-primary-rgb", Value: "56,128,255"},
	}

	assert.Equal(t,
		"--ion-color-primary: #3880ff;\n--ion-color-primary-rgb: 56,128,255;",
		Render(set, DefaultPrefix))
	assert.Equal(t, "--color-primary: #3880ff;", Render(set[:1], ""))
	assert.Equal(t, "", Render(nil, DefaultPrefix))
}

func TestParseBlock_RoundTrip(t *testing.T) {
	set := generateDefaults(t, palette.Palette{palette.Tertiary: "rgba(1, 2, 3, 0.5)"})

	block := Render(set, DefaultPrefix)
	assert.Equal(t, set, ParseBlock(block, DefaultPrefix))
}

func TestParseBlock_Lenient(t *testing.T) {
	block := strings.Join([]string{
		"",
		"  --ion-color-base: #fff;;",
		"garbage",
		"--other-thing :  red ;",
		": novalue;",
	}, "\n")

	got := ParseBlock(block, DefaultPrefix)
	assert.Equal(t, Set{
		{Name: "color-base", Value: "#fff"},
		{Name: "--other-thing", Value: "red"},
	}, got)
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "--ion-text-color", PropertyName("ion-", "text-color"))
	assert.Equal(t, "--custom", PropertyName("ion-", "--custom"))
}
