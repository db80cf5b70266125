package model

// TypeItem is the only entity type the backing tables hold today.
const TypeItem = "ITEM"

type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Notes       string     `json:"notes"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Type        string     `json:"type"`
	Tags        []string   `json:"tags"`
	Possession  Possession `json:"possession"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// Possession is a placeholder for a future owner column; both fields stay
// empty until the backing table grows one.
type Possession struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
