package comments

import "time"

// Comment is a top-level comment on a board.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	MemberID  string    `json:"memberId" db:"member_id"`
	Contents  string    `json:"contents" db:"contents"`
	Seq       int64     `json:"seq" db:"seq"`
	BoardSeq  int64     `json:"boardSeq" db:"board_seq"`
}

// Reply is a nested answer to one comment. Replies do not nest further.
type Reply struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	MemberID   string    `json:"memberId" db:"member_id"`
	Contents   string    `json:"contents" db:"contents"`
	Seq        int64     `json:"seq" db:"seq"`
	CommentSeq int64     `json:"commentSeq" db:"comment_seq"`
}

// TargetKind names what kind of content a report points at.
type TargetKind string

const (
	TargetComment TargetKind = "comment"
	TargetReply   TargetKind = "reply"
)

// Target identifies the reported content.
type Target struct {
	Kind TargetKind `json:"kind"`
	Seq  int64      `json:"seq"`
}

// Report is one member's moderation report against a comment or reply.
// Resolution deletes the rows; there is no further state machine.
type Report struct {
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	MemberID   string     `json:"memberId" db:"member_id"`
	ReportCode string     `json:"reportCode" db:"report_code"`
	TargetKind TargetKind `json:"targetKind" db:"target_kind"`
	Seq        int64      `json:"seq" db:"seq"`
	TargetSeq  int64      `json:"targetSeq" db:"target_seq"`
}

// ReportedTarget is one row of the moderation queue: a reported comment or
// reply with how often and since when it has been reported. The queue is
// ordered oldest first so moderators clear a FIFO backlog.
type ReportedTarget struct {
	FirstReportedAt time.Time  `json:"firstReportedAt" db:"first_reported_at"`
	MemberID        string     `json:"memberId" db:"member_id"`
	Contents        string     `json:"contents" db:"contents"`
	TargetKind      TargetKind `json:"targetKind" db:"target_kind"`
	TargetSeq       int64      `json:"targetSeq" db:"target_seq"`
	ReportCount     int64      `json:"reportCount" db:"report_count"`
}

// CommentPage is one page of a board's comments plus the total for
// pagination UI.
type CommentPage struct {
	Comments []Comment `json:"comments"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Size     int       `json:"size"`
}

// ReportedPage is one page of the moderation queue plus the total.
type ReportedPage struct {
	Targets []ReportedTarget `json:"targets"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Size    int              `json:"size"`
}
