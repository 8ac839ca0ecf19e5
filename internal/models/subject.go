package models

// Subject represents a subject from the study programme. Immutable once
// created.
type Subject struct {
	ID         string     `db:"id" json:"id"`
	Nazwa      string     `db:"nazwa" json:"nazwa"`
	Kierunek   string     `db:"kierunek" json:"kierunek"`
	TypStudiow TypStudiow `db:"typ_studiow" json:"typ_studiow"`
	Rok        int        `db:"rok" json:"rok"`
}

// SubjectFilter captures supported filters for listing subjects.
type SubjectFilter struct {
	Kierunek   string
	TypStudiow TypStudiow
	Rok        int
}

// Cohort identifies the student group that sits an exam together. It is
// the unit at which the one-exam-per-day rule is enforced.
type Cohort struct {
	Kierunek   string     `json:"kierunek"`
	TypStudiow TypStudiow `json:"typ_studiow"`
	Rok        int        `json:"rok"`
}

// Cohort returns the subject's cohort triple.
func (s Subject) Cohort() Cohort {
	return Cohort{Kierunek: s.Kierunek, TypStudiow: s.TypStudiow, Rok: s.Rok}
}
