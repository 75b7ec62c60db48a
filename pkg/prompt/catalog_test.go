package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesOrder(t *testing.T) {
	var ids []string
	for _, cat := range Categories() {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []string{
		"style", "camera", "angles", "lensStyle", "lens", "filmStock",
		"iso", "aperture", "shutter", "action", "wardrobe", "environment",
		"lighting", "finalTouches",
	}, ids)
}

func TestCategoryByID(t *testing.T) {
	cat := CategoryByID("angles")
	require.NotNil(t, cat)
	assert.Equal(t, OnePerGroup, cat.Kind)

	assert.Nil(t, CategoryByID("no-such-category"))
}

func TestFreeTextCategories(t *testing.T) {
	for _, id := range []string{"action", "wardrobe", "environment", "finalTouches"} {
		cat := CategoryByID(id)
		require.NotNil(t, cat, id)
		assert.Equal(t, FreeText, cat.Kind, id)
		assert.True(t, cat.AllowCustom, id)
	}

	lighting := CategoryByID("lighting")
	require.NotNil(t, lighting)
	assert.Equal(t, SingleSelect, lighting.Kind)
}

func TestFindOption(t *testing.T) {
	opt, ok := FindOption("angles", "view-ots")
	require.True(t, ok)
	assert.Equal(t, "View", opt.Group)
	assert.Equal(t, "over-the-shoulder", opt.Fragment)

	_, ok = FindOption("angles", "missing")
	assert.False(t, ok)
	_, ok = FindOption("missing", "view-ots")
	assert.False(t, ok)
}

func TestEveryOptionHasIDAndLabel(t *testing.T) {
	for _, cat := range Categories() {
		seen := map[string]bool{}
		for _, opt := range cat.Options {
			assert.NotEmpty(t, opt.ID, "%s option without id", cat.ID)
			assert.NotEmpty(t, opt.Label, "%s/%s", cat.ID, opt.ID)
			assert.False(t, seen[opt.ID], "%s/%s duplicated", cat.ID, opt.ID)
			seen[opt.ID] = true
		}
	}
}

func TestFramingGroups(t *testing.T) {
	cat := CategoryByID("angles")
	require.NotNil(t, cat)

	counts := map[string]int{}
	for _, opt := range cat.Options {
		counts[opt.Group]++
	}
	assert.Equal(t, map[string]int{"Height": 6, "View": 6, "Size": 5}, counts)
}

func TestLensLookups(t *testing.T) {
	lens, ok := LensByID("50mm-a")
	require.True(t, ok)
	assert.Equal(t, "50mm anamorphic lens", lens.Fragment)
	assert.Equal(t, "A", lens.StyleSuffix)

	_, ok = LensByID("missing")
	assert.False(t, ok)

	style, ok := LensStyleByID("M")
	require.True(t, ok)
	assert.Equal(t, "Macro", style.Label)
	_, ok = LensStyleByID("Z")
	assert.False(t, ok)
}

func TestCameraLookups(t *testing.T) {
	camera, ok := CameraByID(DefaultCameraID)
	require.True(t, ok)
	assert.Equal(t, "Canon C300 III", camera.Name)
	assert.Equal(t, "D", camera.TypeSuffix)

	_, ok = CameraByID("missing")
	assert.False(t, ok)

	kind, ok := CameraTypeByID("F")
	require.True(t, ok)
	assert.Equal(t, "Film", kind.Label)
	_, ok = CameraTypeByID("X")
	assert.False(t, ok)
}

func TestLensStyleSuffixesMatchFilters(t *testing.T) {
	valid := map[rune]bool{}
	for _, f := range LensStyleFilters {
		require.Len(t, f.ID, 1)
		valid[rune(f.ID[0])] = true
	}
	for _, lens := range Lenses() {
		require.NotEmpty(t, lens.StyleSuffix, lens.ID)
		for _, suffix := range lens.StyleSuffix {
			assert.True(t, valid[suffix], "%s has unknown style %q", lens.ID, suffix)
		}
	}
}

func TestCameraTypeSuffixesMatchFilters(t *testing.T) {
	valid := map[string]bool{}
	for _, f := range CameraTypeFilters {
		valid[f.ID] = true
	}
	for _, camera := range CameraBodies() {
		assert.True(t, valid[camera.TypeSuffix], "%s has unknown type %q", camera.ID, camera.TypeSuffix)
	}
}
