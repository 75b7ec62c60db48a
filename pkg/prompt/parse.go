package prompt

import (
	"regexp"
	"strings"
)

var (
	sectionMarker  = regexp.MustCompile(`(?i)\[(Subjects|Actions|Details|Environment|Lighting|Consistency)\]`)
	primaryField   = regexp.MustCompile(`(?i)\[Primary:\]\s*([^\[]*)`)
	secondaryField = regexp.MustCompile(`(?i)\[Secondary:\]\s*([^\[]*)`)
	bracketBlock   = regexp.MustCompile(`\[([^\]]+)\]\s*([^\[]*)`)
)

// Bracket labels mapped to the free-text category their content fills.
var bracketCategories = map[string]string{
	"details":     "wardrobe",
	"environment": "environment",
	"lighting":    "lighting",
}

// Parse recovers a selection state from arbitrary prompt text. It is
// best-effort and never fails: bracketed sections fill free-text
// categories, canonical fragments are substring-matched against the
// catalog, and anything unrecognized is ignored.
func Parse(text string) Parsed {
	result := Parsed{
		Selections:   make(map[string][]string),
		CustomValues: make(map[string][]string),
	}

	lower := strings.ToLower(text)

	result.Subjects = parseSubjects(text)

	parseBracketSections(text, &result)

	for _, cat := range Categories() {
		if cat.Kind == FreeText {
			continue
		}
		var matched []string
		for _, opt := range cat.Options {
			if opt.Fragment != "" && strings.Contains(lower, strings.ToLower(opt.Fragment)) {
				matched = append(matched, opt.ID)
			}
		}
		if len(matched) == 0 {
			continue
		}
		if cat.Kind == MultiSelect || cat.Kind == OnePerGroup {
			result.Selections[cat.ID] = matched
		} else {
			result.Selections[cat.ID] = matched[:1]
		}
	}

	for _, lens := range Lenses() {
		if strings.Contains(lower, strings.ToLower(lens.Fragment)) || strings.Contains(lower, strings.ToLower(lens.Name)) {
			result.LensID = lens.ID
			break
		}
	}
	for _, camera := range CameraBodies() {
		if strings.Contains(lower, strings.ToLower(camera.Fragment)) || strings.Contains(lower, strings.ToLower(camera.Name)) {
			result.CameraID = camera.ID
			break
		}
	}

	return result
}

// section returns the content between the named marker and the next
// recognized marker (or end of text).
func section(text, name string) (string, bool) {
	locs := sectionMarker.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range locs {
		if !strings.EqualFold(text[loc[2]:loc[3]], name) {
			continue
		}
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		return text[loc[1]:end], true
	}
	return "", false
}

// parseSubjects rebuilds subjects from the [Subjects] section, with
// actions attached by position from the [Actions] section. Fields come
// from comma-splitting: name, age, then the rest joined as appearance.
func parseSubjects(text string) []Subject {
	subjectsContent, ok := section(text, "Subjects")
	if !ok {
		return nil
	}

	var primaryAction, secondaryAction string
	if actionsContent, ok := section(text, "Actions"); ok {
		if m := primaryField.FindStringSubmatch(actionsContent); m != nil {
			primaryAction = fieldValue(m[1])
		}
		if m := secondaryField.FindStringSubmatch(actionsContent); m != nil {
			secondaryAction = fieldValue(m[1])
		}
	}

	var subjects []Subject
	if m := primaryField.FindStringSubmatch(subjectsContent); m != nil {
		subjects = append(subjects, subjectFromFields(fieldValue(m[1]), primaryAction))
	}
	if m := secondaryField.FindStringSubmatch(subjectsContent); m != nil {
		subjects = append(subjects, subjectFromFields(fieldValue(m[1]), secondaryAction))
	}
	return subjects
}

// fieldValue trims a [Primary:]/[Secondary:] capture. The capture spans
// lines up to the next bracket, so a manually typed multi-line value is
// kept whole; a blank line ends it, which keeps unlabeled paragraphs
// that follow the field out of the value.
func fieldValue(capture string) string {
	if cut := strings.Index(capture, "\n\n"); cut >= 0 {
		capture = capture[:cut]
	}
	return strings.TrimSpace(capture)
}

func subjectFromFields(content, action string) Subject {
	parts := strings.Split(strings.TrimSpace(content), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	s := Subject{Action: action}
	if len(parts) > 0 {
		s.Name = parts[0]
	}
	if len(parts) > 1 {
		s.Age = parts[1]
	}
	if len(parts) > 2 {
		s.Appearance = strings.Join(parts[2:], ", ")
	}
	return s
}

// parseBracketSections fills free-text categories from their bracketed
// blocks. Only FreeText categories accept verbatim content; the content
// becomes the category's sole custom value.
func parseBracketSections(text string, result *Parsed) {
	for _, m := range bracketBlock.FindAllStringSubmatch(text, -1) {
		label := strings.ToLower(strings.TrimSpace(m[1]))
		switch label {
		case "subjects", "actions", "primary:", "secondary:":
			continue
		}
		content := strings.TrimSpace(m[2])
		if content == "" {
			continue
		}
		categoryID, ok := bracketCategories[label]
		if !ok {
			continue
		}
		cat := CategoryByID(categoryID)
		if cat == nil || cat.Kind != FreeText {
			continue
		}
		result.CustomValues[categoryID] = []string{content}
	}
}
