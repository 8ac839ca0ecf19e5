package models

// SessionPeriod is a named exam-session window. Reference data only; it
// does not participate in conflict checks.
type SessionPeriod struct {
	ID            string `db:"id" json:"id"`
	Semestr       string `db:"semestr" json:"semestr"`
	RokAkademicki string `db:"rok_akademicki" json:"rok_akademicki"`
	DataStart     string `db:"data_start" json:"data_start"`
	DataEnd       string `db:"data_end" json:"data_end"`
}
