package models

// DemoUser is a read-only seed record for the frontend's user selector.
type DemoUser struct {
	ID         string      `db:"id" json:"id"`
	Name       string      `db:"name" json:"name"`
	Role       UserRole    `db:"role" json:"role"`
	Kierunek   *string     `db:"kierunek" json:"kierunek,omitempty"`
	TypStudiow *TypStudiow `db:"typ_studiow" json:"typ_studiow,omitempty"`
	Rok        *int        `db:"rok" json:"rok,omitempty"`
	Przedmiot  *string     `db:"przedmiot" json:"przedmiot,omitempty"`
}
