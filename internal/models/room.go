package models

// Room is an exam room. Nazwa is the natural key used for slot lookups;
// matching is case-sensitive and exact. Immutable once created.
type Room struct {
	ID        string  `db:"id" json:"id"`
	Nazwa     string  `db:"nazwa" json:"nazwa"`
	Budynek   string  `db:"budynek" json:"budynek"`
	Pojemnosc int     `db:"pojemnosc" json:"pojemnosc"`
	Typ       *string `db:"typ" json:"typ,omitempty"`
}

// RoomAvailability is the structured outcome of the capacity and
// availability check. Room is nil when the room does not exist.
type RoomAvailability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Room      *Room  `json:"sala"`
}
