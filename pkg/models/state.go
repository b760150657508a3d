package models

// State is one entry of the region reference list used by the address form.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type StatesResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	States  []State `json:"states"`
}
