package types

// Planet represents a single planetary record.
//
// As with User, the json tags are the wire projection: list and detail
// endpoints serialize exactly these fields.
type Planet struct {
	// ID is the unique identifier of the planet, generated by the store.
	ID int `json:"planet_id" db:"planet_id"`

	// Name is the planet's display name. Application logic treats it as a
	// de-facto unique key: checked before insert, not constrained in the
	// schema.
	Name string `json:"planet_name" db:"planet_name"`

	// Type is a free-text classification (e.g. "Class M").
	Type string `json:"planet_type" db:"planet_type"`

	// HomeStar names the star the planet orbits.
	HomeStar string `json:"home_star" db:"home_star"`

	// Mass is the planet's mass in kilograms.
	Mass float64 `json:"mass" db:"mass"`

	// Radius is the planet's radius in kilometers.
	Radius float64 `json:"radius" db:"radius"`

	// Distance is the orbital distance from the home star in kilometers.
	Distance float64 `json:"distance" db:"distance"`
}
