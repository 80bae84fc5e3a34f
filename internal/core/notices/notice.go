package notices

import "time"

// Notice is an admin-authored announcement shown on the notice board.
type Notice struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Title     string    `json:"title" db:"title"`
	Contents  string    `json:"contents" db:"contents"`
	MemberID  string    `json:"memberId" db:"member_id"`
	ViewCount int64     `json:"viewCount" db:"view_count"`
	Seq       int64     `json:"seq" db:"seq"`
}
