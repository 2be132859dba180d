package model

type ValidateRequestBody struct {
	Song string `json:"song"`
}

type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type AnalyzeRequestBody struct {
	Song string `json:"song"`
	// Layout is "wide" (default) or "compact".
	Layout string `json:"layout,omitempty"`
}

type AnalyzeResponse struct {
	Table  string   `json:"table"`
	Notes  []string `json:"notes"`
	Totals [12]int  `json:"totals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
