package auspost

// Country identifies a country on an article route or a validated address.
type Country struct {
	// Code is the ISO-style country code (e.g., AU).
	Code string `json:"code"`
	// Name is the display name.
	Name string `json:"name"`
}
