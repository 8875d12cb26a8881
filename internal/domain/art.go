package domain

// Artwork is a catalog record. It is sourced read-only from the external
// catalog API; field tags follow its wire format.
type Artwork struct {
	ID          int     `json:"id" bson:"id"`
	Title       string  `json:"title" bson:"title"`
	ImageID     *string `json:"image_id" bson:"image_id"`
	ArtistTitle *string `json:"artist_title" bson:"artist_title"`
	DateDisplay *string `json:"date_display" bson:"date_display"`
}

// Pagination mirrors the catalog API's pagination envelope.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}
