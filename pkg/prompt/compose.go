package prompt

import (
	"regexp"
	"strings"
)

// Category ids folded into the [Camera/Lens] section, in render order
// after the framing and lens string.
var cameraSectionCategories = []string{"style", "filmStock", "iso", "aperture", "shutter"}

// Section prefixes for the trailing category blocks.
var sectionPrefixes = map[string]string{
	"wardrobe":    "[Details]",
	"environment": "[Environment]",
	"lighting":    "[Lighting]",
}

// photorealisticSuffix always renders last in the camera section when
// the photorealistic genre is active.
const photorealisticSuffix = "natural film grain, photorealistic"

// Compose renders a selection state into the final prompt text. It is
// deterministic and total: unknown ids are dropped, empty sections are
// omitted, and an empty state yields an empty string.
func Compose(state SelectionState) string {
	var parts []string

	photorealistic := containsID(state.Selections["style"], "photorealistic")

	if desc := strings.TrimSpace(state.SceneDescription); desc != "" {
		parts = append(parts, desc)
	}

	if section := composeCameraSection(state, photorealistic); section != "" {
		parts = append(parts, section)
	}

	parts = append(parts, composeSubjectSections(state.Subjects)...)

	parts = append(parts, composeTrailingSections(state)...)

	main := strings.Join(parts, "\n\n")
	if main == "" {
		return ""
	}

	if negative := strings.Join(categoryFragments(state, "finalTouches"), ", "); negative != "" {
		return main + "\n\n" + negative
	}
	return main
}

// composeCameraSection builds the "[Camera/Lens] ..." part: framing text
// joined with the lens descriptor, then genre, film stock, ISO, aperture
// and shutter fragments, then the camera body fragment.
func composeCameraSection(state SelectionState, photorealistic bool) string {
	var cameraParts []string

	angleStr := strings.Join(orderedAngleFragments(state.Selections["angles"]), " ")
	lensStr := lensDescriptor(state.LensID, state.LensStyle)
	switch {
	case angleStr != "" && lensStr != "":
		cameraParts = append(cameraParts, angleStr+" "+lensStr)
	case angleStr != "":
		cameraParts = append(cameraParts, angleStr)
	case lensStr != "":
		cameraParts = append(cameraParts, lensStr)
	}

	for _, categoryID := range cameraSectionCategories {
		cameraParts = append(cameraParts, categoryFragments(state, categoryID)...)
	}

	if camera, ok := CameraByID(state.CameraID); ok {
		cameraParts = append(cameraParts, camera.Fragment)
	}

	if photorealistic {
		cameraParts = append(cameraParts, photorealisticSuffix)
	}

	if len(cameraParts) == 0 {
		return ""
	}
	return "[Camera/Lens] " + strings.Join(cameraParts, ", ")
}

// orderedAngleFragments returns the active framing fragments in fixed
// Height, View, Size order, one per group.
func orderedAngleFragments(selected []string) []string {
	cat := CategoryByID("angles")
	if cat == nil {
		return nil
	}
	var fragments []string
	for _, group := range []string{"Height", "View", "Size"} {
		for _, opt := range cat.Options {
			if opt.Group == group && containsID(selected, opt.ID) {
				fragments = append(fragments, opt.Fragment)
				break
			}
		}
	}
	return fragments
}

// lensDescriptor renders the lens fragment, prefixed with the style
// filter label when the fragment does not already mention it, and
// suffixed with "look".
func lensDescriptor(lensID, styleID string) string {
	lens, ok := LensByID(lensID)
	if !ok {
		return ""
	}
	descriptor := lens.Fragment
	if style, ok := LensStyleByID(styleID); ok {
		name := strings.ToLower(style.Label)
		if !strings.Contains(strings.ToLower(descriptor), name) {
			descriptor = name + " " + descriptor
		}
	}
	return descriptor + " look"
}

// composeSubjectSections renders the [Subjects] and [Actions] blocks.
// Index 0 is labeled [Primary:], later indexes [Secondary:], with one
// blank line before the first secondary entry.
func composeSubjectSections(subjects []Subject) []string {
	var valid []Subject
	for _, s := range subjects {
		if s.Name != "" || s.Age != "" || s.Appearance != "" || s.Action != "" {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	var parts []string

	subjectLines := []string{"[Subjects]"}
	for i, s := range valid {
		desc := joinNonEmpty(", ", s.Name, s.Age, s.Appearance)
		if desc == "" {
			continue
		}
		if i == 1 {
			subjectLines = append(subjectLines, "")
		}
		subjectLines = append(subjectLines, subjectLabel(i)+" "+desc)
	}
	if len(subjectLines) > 1 {
		parts = append(parts, strings.Join(subjectLines, "\n"))
	}

	actionLines := []string{"[Actions]"}
	for i, s := range valid {
		if s.Action == "" {
			continue
		}
		if i == 1 && len(actionLines) > 1 {
			actionLines = append(actionLines, "")
		}
		actionLines = append(actionLines, subjectLabel(i)+" "+s.Action)
	}
	if len(actionLines) > 1 {
		parts = append(parts, strings.Join(actionLines, "\n"))
	}

	return parts
}

func subjectLabel(index int) string {
	if index == 0 {
		return "[Primary:]"
	}
	return "[Secondary:]"
}

// composeTrailingSections renders the remaining categories in catalog
// order. Prefixed categories become one "[Prefix] a, b" part; the rest
// contribute each fragment as its own part.
func composeTrailingSections(state SelectionState) []string {
	handled := map[string]bool{
		"angles": true, "style": true, "filmStock": true, "iso": true,
		"aperture": true, "shutter": true, "lensStyle": true, "lens": true,
		"finalTouches": true, "action": true,
	}

	var parts []string
	for _, cat := range Categories() {
		if handled[cat.ID] {
			continue
		}
		fragments := categoryFragments(state, cat.ID)
		if len(fragments) == 0 {
			continue
		}
		prefix, ok := sectionPrefixes[cat.ID]
		if !ok {
			parts = append(parts, fragments...)
			continue
		}
		line := prefix + " " + strings.Join(fragments, ", ")
		if cat.ID == "lighting" {
			line += state.LightingSuffix
		}
		parts = append(parts, line)
	}
	return parts
}

// categoryFragments returns the canonical fragments of the selected
// option ids (in selection order, unknown ids dropped) followed by the
// category's custom values. The photorealistic genre is excluded here;
// Compose appends its fixed suffix at the end of the camera section.
func categoryFragments(state SelectionState, categoryID string) []string {
	cat := CategoryByID(categoryID)
	if cat == nil {
		return nil
	}
	var fragments []string
	for _, id := range state.Selections[categoryID] {
		if categoryID == "style" && id == "photorealistic" {
			continue
		}
		if opt, ok := FindOption(categoryID, id); ok && opt.Fragment != "" {
			fragments = append(fragments, opt.Fragment)
		}
	}
	fragments = append(fragments, state.CustomValues[categoryID]...)
	return fragments
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

var lightingLine = regexp.MustCompile(`\[Lighting\] ([^\n]+)`)

// ExtractLightingSuffix recovers manually appended text from the
// [Lighting] line of an edited render. It returns the text following
// the canonical fragments of the current lighting selection, or "" when
// the line is absent or no longer starts with those fragments. Callers
// store the result in SelectionState.LightingSuffix and drop it when
// the lighting selection changes.
func ExtractLightingSuffix(edited string, state SelectionState) string {
	cat := CategoryByID("lighting")
	if cat == nil {
		return ""
	}
	var fragments []string
	for _, id := range state.Selections["lighting"] {
		if opt, ok := FindOption("lighting", id); ok && opt.Fragment != "" {
			fragments = append(fragments, opt.Fragment)
		}
	}
	base := strings.Join(fragments, ", ")
	if base == "" {
		return ""
	}

	m := lightingLine.FindStringSubmatch(edited)
	if m == nil || !strings.HasPrefix(m[1], base) {
		return ""
	}
	return m[1][len(base):]
}
