package community

import "time"

// Board represents a community post. Boards are created once by the
// submission pipeline and are immutable afterwards except for the view count.
type Board struct {
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	HousingTypeCode string    `json:"housingTypeCode" db:"housing_type_code"`
	SpaceTypeCode   string    `json:"spaceTypeCode" db:"space_type_code"`
	AreaSizeCode    string    `json:"areaSizeCode" db:"area_size_code"`
	Contents        string    `json:"contents" db:"contents"`
	MemberID        string    `json:"memberId" db:"member_id"`
	ViewCount       int64     `json:"viewCount" db:"view_count"`
	Seq             int64     `json:"seq" db:"seq"`
}

// BoardImage is one attachment of a board. Order is caller-supplied display
// order; it is persisted as given and not validated for uniqueness or
// contiguity within a board.
type BoardImage struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Seq       int64     `json:"seq" db:"seq"`
	BoardSeq  int64     `json:"boardSeq" db:"board_seq"`
	Order     int       `json:"order" db:"image_order"`
}

// BoardTag pins a product onto a point of a board image. Coordinates are
// percentages of the rendered image, as sent by the editor frontend.
type BoardTag struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	Seq           int64     `json:"seq" db:"seq"`
	BoardImageSeq int64     `json:"boardImageSeq" db:"board_image_seq"`
	ProductSeq    int64     `json:"productSeq" db:"product_seq"`
	Left          float64   `json:"left" db:"left_pos"`
	Top           float64   `json:"top" db:"top_pos"`
}

// TagInput is the structured tag payload for one image, already decoded by
// the transport layer. The pipeline never parses free-form text.
type TagInput struct {
	ProductSeq int64   `json:"productSeq"`
	Left       float64 `json:"left"`
	Top        float64 `json:"top"`
}

// Attachment is one file of a submission together with its display order and
// tag payloads. Attachments are processed strictly in slice order.
type Attachment struct {
	Data        []byte
	ContentType string
	Order       int
	Tags        []TagInput
}

// SubmitRequest carries everything needed to create a board with its images
// and tags in one atomic submission.
type SubmitRequest struct {
	HousingTypeCode string
	SpaceTypeCode   string
	AreaSizeCode    string
	Contents        string
	MemberID        string
	Attachments     []Attachment
}

// BoardSummary is a feed row: the board plus its image URLs in display order.
type BoardSummary struct {
	Board
	ImageURLs []string `json:"imageUrls"`
}

// BoardMedia bundles the images and tags of one board for the detail view.
type BoardMedia struct {
	Images []BoardImage `json:"images"`
	Tags   []BoardTag   `json:"tags"`
}
