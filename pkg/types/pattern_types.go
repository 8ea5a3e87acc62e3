package types

import "time"

// Operation-specific responses

type CalculateResponse struct {
	Status   string  `json:"status"`
	X        float64 `json:"x"`        // First operand
	Y        float64 `json:"y"`        // Second operand
	Operator string  `json:"operator"` // Selector symbol as received
	Result   float64 `json:"result"`
	Summary  string  `json:"summary"` // Human-readable equation
}

// Instance is the LLM-friendly view of a shared singleton instance
type Instance struct {
	ID        string    `json:"id"`        // Identity token, stable for the process lifetime
	Variant   string    `json:"variant"`   // Technique that built the instance
	CreatedAt time.Time `json:"createdAt"` // Construction time
}

// Variant describes one singleton technique
type Variant struct {
	Name           string `json:"name"`
	ThreadSafe     bool   `json:"threadSafe"`
	Initialization string `json:"initialization"` // "lazy" or "eager"
	State          string `json:"state"`          // unconstructed, constructing or constructed
	Description    string `json:"description"`
}

type InstanceResponse struct {
	Status   string   `json:"status"`
	Instance Instance `json:"instance"`
	Summary  string   `json:"summary"`
}

type VariantListResponse struct {
	Status   string    `json:"status"`
	Variants []Variant `json:"variants"`
}

type NameResponse struct {
	Status   string `json:"status"`
	Name     string `json:"name"`
	Instance string `json:"instance"` // ID of the named instance
}

type HelloResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
