package prompt

// Subject describes one person or figure in the scene. All fields are
// free-form; the UI layer bounds the list to primary and secondary.
type Subject struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Appearance string `json:"appearance"`
	Action     string `json:"action"`
}

// SelectionState is the full input to Compose: per-category option ids
// in selection order, free-text custom values, the scene description,
// subjects, and the chosen lens and camera body with their filter ids.
// All compose and resolve functions treat it as immutable.
type SelectionState struct {
	Selections       map[string][]string `json:"selections"`
	CustomValues     map[string][]string `json:"customValues"`
	SceneDescription string              `json:"sceneDescription,omitempty"`
	Subjects         []Subject           `json:"subjects,omitempty"`
	LensID           string              `json:"selectedLensId,omitempty"`
	LensStyle        string              `json:"selectedLensStyle,omitempty"`
	CameraID         string              `json:"selectedCameraId,omitempty"`
	CameraType       string              `json:"selectedCameraType,omitempty"`

	// LightingSuffix carries manually appended lighting commentary
	// recovered by ExtractLightingSuffix. It is re-spliced verbatim
	// onto the [Lighting] line and must be cleared by the caller when
	// the lighting selection changes.
	LightingSuffix string `json:"lightingSuffix,omitempty"`
}

// Parsed is the result of Parse: the best-effort inverse of Compose.
// Absent matches leave map entries missing rather than empty.
type Parsed struct {
	Selections   map[string][]string `json:"selections"`
	CustomValues map[string][]string `json:"customValues"`
	LensID       string              `json:"matchedLensId,omitempty"`
	CameraID     string              `json:"matchedCameraId,omitempty"`
	Subjects     []Subject           `json:"subjects,omitempty"`
}
