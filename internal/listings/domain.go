package listings

import "time"

// Fields is the fixed replaceable field set of a listing. Create and
// replace both bind exactly these keys; anything else in the payload is
// dropped.
type Fields struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	RoomSize    float64 `json:"roomSize"`
	Date        string  `json:"date"`
	Rent        float64 `json:"rent"`
	Number      string  `json:"number"`
	Description string  `json:"description"`
}

// Listing is a stored house listing. OwnerEmail records the identity that
// created it and is never touched by a replace.
type Listing struct {
	ID string `json:"id"`
	Fields
	OwnerEmail string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
