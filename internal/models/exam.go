package models

// Exam belongs to exactly one subject and names its instructor.
// Immutable once created.
type Exam struct {
	ID             string `db:"id" json:"id"`
	SubjectID      string `db:"subject_id" json:"subject_id"`
	ProwadzacyName string `db:"prowadzacy_name" json:"prowadzacy_name"`
}

// ExamDetail joins an exam with its owning subject for list responses.
type ExamDetail struct {
	Exam
	SubjectNazwa      string     `db:"subject_nazwa" json:"subject_nazwa"`
	SubjectKierunek   string     `db:"subject_kierunek" json:"subject_kierunek"`
	SubjectTypStudiow TypStudiow `db:"subject_typ_studiow" json:"subject_typ_studiow"`
	SubjectRok        int        `db:"subject_rok" json:"subject_rok"`
}

// ExamFilter captures supported filters for listing exams; the cohort
// fields filter through the owning subject.
type ExamFilter struct {
	Kierunek       string
	TypStudiow     TypStudiow
	Rok            int
	ProwadzacyName string
}
