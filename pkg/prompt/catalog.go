// Package prompt implements the structured prompt engine behind the
// PROMPTN8 builder: a static vocabulary catalog of photographic facets,
// a deterministic composer that renders a selection state into one
// multi-section prompt text, a constraint resolver for the framing
// category, and a best-effort parser that recovers selections from
// pasted prompt text.
package prompt

// Kind governs how many options of a category may be active at once.
type Kind int

const (
	// SingleSelect allows at most one active option.
	SingleSelect Kind = iota
	// MultiSelect allows any number of active options.
	MultiSelect
	// OnePerGroup allows one active option per option group.
	OnePerGroup
	// FreeText categories are driven by custom text; their options act
	// as preset values rather than toggled selections.
	FreeText
)

// Option is a single selectable vocabulary entry. Fragment is the
// canonical text the composer emits when the option is active.
type Option struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Fragment string `json:"promptValue"`
	Group    string `json:"group,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
}

// Category is an ordered set of options under one selection rule.
type Category struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Description        string   `json:"description"`
	Kind               Kind     `json:"kind"`
	Options            []Option `json:"options"`
	AllowCustom        bool     `json:"allowCustom,omitempty"`
	DefaultCustomValue string   `json:"defaultCustomValue,omitempty"`
}

// Lens is an entry of the lens catalog. StyleSuffix marks which style
// filters the lens belongs to: A, S, AS, M or T.
type Lens struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StyleSuffix string `json:"styleSuffix"`
	Fragment    string `json:"promptValue"`
	Tooltip     string `json:"tooltip,omitempty"`
}

// CameraBody is an entry of the camera catalog. TypeSuffix is D for
// digital bodies and F for film bodies.
type CameraBody struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TypeSuffix string `json:"typeSuffix"`
	Fragment   string `json:"promptValue"`
	Tooltip    string `json:"tooltip,omitempty"`
}

// Filter is a lens style or camera type filter entry.
type Filter struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// DefaultCameraID is the camera body highlighted when nothing is selected.
const DefaultCameraID = "canon-c300-iii"

// Categories returns the full catalog in render order. The returned
// slice is shared; callers must not mutate it.
func Categories() []Category {
	return allCategories
}

// CategoryByID returns the category with the given id, or nil when the
// id is unknown. Unknown ids are a normal condition for callers that
// process untrusted state.
func CategoryByID(id string) *Category {
	for i := range allCategories {
		if allCategories[i].ID == id {
			return &allCategories[i]
		}
	}
	return nil
}

// FindOption looks up an option within a category.
func FindOption(categoryID, optionID string) (Option, bool) {
	cat := CategoryByID(categoryID)
	if cat == nil {
		return Option{}, false
	}
	for _, opt := range cat.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return Option{}, false
}

// LensByID returns the lens with the given id.
func LensByID(id string) (Lens, bool) {
	for _, l := range lensCollection {
		if l.ID == id {
			return l, true
		}
	}
	return Lens{}, false
}

// CameraByID returns the camera body with the given id.
func CameraByID(id string) (CameraBody, bool) {
	for _, c := range cameraCollection {
		if c.ID == id {
			return c, true
		}
	}
	return CameraBody{}, false
}

// LensStyleByID returns the lens style filter with the given id
// (A, S, M or T).
func LensStyleByID(id string) (Filter, bool) {
	for _, f := range LensStyleFilters {
		if f.ID == id {
			return f, true
		}
	}
	return Filter{}, false
}

// CameraTypeByID returns the camera type filter with the given id
// (D or F).
func CameraTypeByID(id string) (Filter, bool) {
	for _, f := range CameraTypeFilters {
		if f.ID == id {
			return f, true
		}
	}
	return Filter{}, false
}

// Lenses returns the lens catalog in display order.
func Lenses() []Lens {
	return lensCollection
}

// CameraBodies returns the camera body catalog in display order.
func CameraBodies() []CameraBody {
	return cameraCollection
}
