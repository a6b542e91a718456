package models

// Driver represents a person allowed to take out fleet vehicles.
type Driver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DriverInput carries the fields accepted when creating or replacing a driver.
type DriverInput struct {
	Name string `json:"name"`
}

// DriverPatch is a partial driver update. Nil fields are left untouched.
type DriverPatch struct {
	Name *string `json:"name"`
}

// DriverFilter narrows driver listings. Name matches case-insensitively on
// any substring of the driver's name.
type DriverFilter struct {
	Name string
}

// DriverSummary is the joined driver view embedded in usage listings.
type DriverSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
