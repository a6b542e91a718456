package models

// Vehicle represents a fleet vehicle available for checkout.
type Vehicle struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Color string `json:"color"`
	Make  string `json:"make"`
}

// VehicleInput carries the fields accepted when creating or replacing a vehicle.
type VehicleInput struct {
	Plate string `json:"plate"`
	Color string `json:"color"`
	Make  string `json:"make"`
}

// VehiclePatch is a partial vehicle update. Nil fields are left untouched.
type VehiclePatch struct {
	Plate *string `json:"plate"`
	Color *string `json:"color"`
	Make  *string `json:"make"`
}

// VehicleFilter narrows vehicle listings. Empty fields are ignored and
// provided fields are combined with AND.
type VehicleFilter struct {
	Color string
	Make  string
}

// VehicleSummary is the joined vehicle view embedded in usage listings.
type VehicleSummary struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Make  string `json:"make"`
	Color string `json:"color"`
}
