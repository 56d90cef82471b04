package model

type IdentifyRequestBody struct {
	// Notes takes precedence; Text is split the way the CLI splits its args.
	Notes Notes  `json:"notes,omitempty"`
	Text  string `json:"text,omitempty"`
	Key   string `json:"key,omitempty"`
	// Inversions defaults to true when absent.
	Inversions      *bool `json:"inversions,omitempty"`
	LabelInversions bool  `json:"label_inversions,omitempty"`
}

type NumericRequestBody struct {
	Degrees    []int  `json:"degrees,omitempty"`
	Text       string `json:"text,omitempty"`
	Key        string `json:"key"`
	Inversions *bool  `json:"inversions,omitempty"`
}

type KeysResponse struct {
	Keys []string `json:"keys"`
}

// TemplateOverview is the wire shape of one catalog entry.
type TemplateOverview struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
	Quality   string `json:"quality"`
	Seventh   bool   `json:"seventh"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
