package model

type Tag struct {
	ID        string   `json:"id"`
	Link      *TagLink `json:"link"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// TagLink points back at the single item referencing this tag, nil when no
// item does.
type TagLink struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}
