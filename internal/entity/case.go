// Package entity holds the value types assembly hands to the case
// repository.
package entity

// Vehicle is the merged vehicle identity for a case.
type Vehicle struct {
	Plate        string  `json:"plate"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Color        *string `json:"color,omitempty"`
	VIN          *string `json:"vin,omitempty"`
	EngineNumber *string `json:"engine_number,omitempty"`
}

type Owner struct {
	NationalID *string `json:"national_id,omitempty"`
	FullName   *string `json:"full_name,omitempty"`
	Source     string  `json:"source"`
}

type Address struct {
	Street   string  `json:"street"`
	Locality *string `json:"locality,omitempty"`
	Region   *string `json:"region,omitempty"`
	Source   string  `json:"source"`
}
