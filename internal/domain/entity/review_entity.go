package entity

// Review is a rating+comment submitted against a teacher. Every review
// starts out pending (Approved=false) and becomes publicly visible only
// after an admin approves it. There is no transition back to pending and
// no delete path.
type Review struct {
	ID        int    `json:"id"`
	TeacherID int    `json:"teacherId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Approved  bool   `json:"approved"`
}
