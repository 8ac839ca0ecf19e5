package models

import "time"

// ExamTerm is a proposed or decided (date, time, room) assignment for an
// exam. Data is a YYYY-MM-DD string and Godzina an HH:MM string; both are
// compared by exact equality, never parsed into calendar arithmetic.
// Approver fields stay nil while the term is proposed and are set exactly
// once when it is decided.
type ExamTerm struct {
	ID             string     `db:"id" json:"id"`
	ExamID         string     `db:"exam_id" json:"exam_id"`
	Data           string     `db:"data" json:"data"`
	Godzina        string     `db:"godzina" json:"godzina"`
	Sala           string     `db:"sala" json:"sala"`
	ProposedByRole UserRole   `db:"proposed_by_role" json:"proposed_by_role"`
	ProposedByName string     `db:"proposed_by_name" json:"proposed_by_name"`
	ApprovedByRole *UserRole  `db:"approved_by_role" json:"approved_by_role,omitempty"`
	ApprovedByName *string    `db:"approved_by_name" json:"approved_by_name,omitempty"`
	Status         TermStatus `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// ExamTermDetail joins a term with its exam and subject for list views.
type ExamTermDetail struct {
	ExamTerm
	ProwadzacyName    string     `db:"prowadzacy_name" json:"prowadzacy_name"`
	SubjectNazwa      string     `db:"subject_nazwa" json:"subject_nazwa"`
	SubjectKierunek   string     `db:"subject_kierunek" json:"subject_kierunek"`
	SubjectTypStudiow TypStudiow `db:"subject_typ_studiow" json:"subject_typ_studiow"`
	SubjectRok        int        `db:"subject_rok" json:"subject_rok"`
}

// ExamTermFilter constrains term listing; the cohort fields filter
// through exam and subject joins.
type ExamTermFilter struct {
	Kierunek   string
	TypStudiow TypStudiow
	Rok        int
	Status     TermStatus
}
