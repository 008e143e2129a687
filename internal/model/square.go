package model

import "encoding/json"

// SquareKind identifies the effect of a square. Values match the map file format.
type SquareKind string

const (
	SquareGo          SquareKind = "Go"
	SquareProperty    SquareKind = "Property"
	SquareIncomeTax   SquareKind = "Income Tax"
	SquareChance      SquareKind = "Chance"
	SquareFreeParking SquareKind = "Free Parking"
	SquareGoToJail    SquareKind = "Go to Jail"
	SquareInJail      SquareKind = "In Jail/Just Visiting"
)

// KnownSquareKinds lists the square kinds with a defined effect, in editor order
func KnownSquareKinds() []SquareKind {
	return []SquareKind{
		SquareGo,
		SquareProperty,
		SquareIncomeTax,
		SquareChance,
		SquareFreeParking,
		SquareGoToJail,
		SquareInJail,
	}
}

// IsKnown returns false for kinds that fall back to a generic no-effect square
func (k SquareKind) IsKnown() bool {
	for _, known := range KnownSquareKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Square is one positioned cell of the board.
// Price, Rent and Owner are only meaningful for SquareProperty.
type Square struct {
	Kind  SquareKind
	Name  string
	Price int
	Rent  int
	Owner string // Player name, empty when unowned
}

// NewProperty creates an unowned property square
func NewProperty(name string, price, rent int) *Square {
	return &Square{Kind: SquareProperty, Name: name, Price: price, Rent: rent}
}

// NewSquare creates a non-property square named after its kind
func NewSquare(kind SquareKind) *Square {
	return &Square{Kind: kind, Name: string(kind)}
}

// IsProperty returns true for purchasable squares
func (s *Square) IsProperty() bool {
	return s.Kind == SquareProperty
}

// IsOwned returns true if the square is a property with an owner
func (s *Square) IsOwned() bool {
	return s.IsProperty() && s.Owner != ""
}

// Clone returns a deep copy of the square
func (s *Square) Clone() *Square {
	c := *s
	return &c
}

type squareJSON struct {
	SquareType string  `json:"square_type"`
	Name       string  `json:"name"`
	Price      *int    `json:"price,omitempty"`
	Rent       *int    `json:"rent,omitempty"`
	Owner      *string `json:"owner,omitempty"`
}

// propertyJSON always writes owner, as null when unowned
type propertyJSON struct {
	SquareType string  `json:"square_type"`
	Name       string  `json:"name"`
	Price      int     `json:"price"`
	Rent       int     `json:"rent"`
	Owner      *string `json:"owner"`
}

// MarshalJSON writes the map file representation of the square
func (s Square) MarshalJSON() ([]byte, error) {
	if !s.IsProperty() {
		return json.Marshal(squareJSON{SquareType: string(s.Kind), Name: s.Name})
	}
	var owner *string
	if s.Owner != "" {
		o := s.Owner
		owner = &o
	}
	return json.Marshal(propertyJSON{
		SquareType: string(s.Kind),
		Name:       s.Name,
		Price:      s.Price,
		Rent:       s.Rent,
		Owner:      owner,
	})
}

// UnmarshalJSON reads the map file representation of the square
func (s *Square) UnmarshalJSON(data []byte) error {
	var raw squareJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Square{Kind: SquareKind(raw.SquareType), Name: raw.Name}
	if s.Name == "" {
		s.Name = raw.SquareType
	}
	if !s.IsProperty() {
		return nil
	}
	if raw.Price != nil {
		s.Price = *raw.Price
	}
	if raw.Rent != nil {
		s.Rent = *raw.Rent
	}
	if raw.Owner != nil {
		s.Owner = *raw.Owner
	}
	return nil
}
