package models

// FormField describes one input control a client must render for a feedback
// type. The control mirrors the input kinds: a textarea for text, five
// discrete stars for stars, a 1-10 slider for rating. Questionnaire types
// expand to one field per sub-question; the container kind itself never
// appears as a control.
type FormField struct {
	Key      string `json:"key"`   // form value key; sub-question hex id for questionnaires
	Label    string `json:"label"` // sub-question prompt, empty for single-field kinds
	Control  string `json:"control"`
	Required bool   `json:"required"`
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Default  int    `json:"default,omitempty"`
}
