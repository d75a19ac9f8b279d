package entity

import "slices"

// ShipClass - static descriptor of a roster entry.
type ShipClass struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Ship - a placed ship. Location shrinks as the opponent hits it.
type Ship struct {
	Name     string   `json:"name"`
	Length   int      `json:"length"`
	Location []string `json:"location"`
}

// DefaultRoster - ships every player places, in placement order.
func DefaultRoster() []ShipClass {
	return []ShipClass{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}

// NewShip - builds an independent ship of the given class at location.
func NewShip(class ShipClass, location []string) Ship {
	return Ship{
		Name:     class.Name,
		Length:   class.Length,
		Location: slices.Clone(location),
	}
}

func (that *Ship) IsSunk() bool {
	return len(that.Location) == 0
}

func (that *Ship) Occupies(cell string) bool {
	return slices.Contains(that.Location, cell)
}

// Hit - removes cell from the ship, reports whether the ship occupied it.
func (that *Ship) Hit(cell string) bool {
	idx := slices.Index(that.Location, cell)
	if idx < 0 {
		return false
	}

	that.Location = slices.Delete(that.Location, idx, idx+1)

	return true
}

func (that Ship) Clone() Ship {
	that.Location = slices.Clone(that.Location)
	if that.Location == nil {
		that.Location = []string{}
	}

	return that
}
