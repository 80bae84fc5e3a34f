package reactions

import "time"

// Kind is the relation a member toggles on a subject.
type Kind string

const (
	KindLike     Kind = "like"
	KindBookmark Kind = "bookmark"
)

// SubjectKind names what kind of content a reaction points at.
type SubjectKind string

const (
	SubjectBoard   SubjectKind = "board"
	SubjectComment SubjectKind = "comment"
)

// Subject identifies the content being reacted to.
type Subject struct {
	Kind SubjectKind `json:"kind"`
	Seq  int64       `json:"seq"`
}

// Reaction is one active member↔subject relation. There is no independent
// identity beyond the tuple: the row's existence is the state, and the
// database enforces at most one active row per tuple.
type Reaction struct {
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	MemberID    string      `json:"memberId" db:"member_id"`
	SubjectKind SubjectKind `json:"subjectKind" db:"subject_kind"`
	Kind        Kind        `json:"kind" db:"kind"`
	SubjectSeq  int64       `json:"subjectSeq" db:"subject_seq"`
}

// ToggleResult reports the state after a toggle and the subject's new count.
type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}
