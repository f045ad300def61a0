// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

// Album represents a released collection of compositions.
//
// Price is intentionally absent from the entity: it is derived as the sum of
// the album's composition prices at projection time, so it can never drift
// from the underlying tracks.
type Album struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Cover  string `json:"cover"`
	Year   *int   `json:"year"`
	Rating int    `json:"rating"`
}

// AlbumProjection is an album hydrated with the related data needed to build
// its flat response payload. Stores fill the slices via aggregate queries in
// link-insertion order.
type AlbumProjection struct {
	Album

	// AuthorNames are the names of the album's authors.
	AuthorNames []string

	// TrackPrices are the prices of the album's compositions.
	TrackPrices []int

	// GenreNames is the union of the album's compositions' genres.
	GenreNames []string
}

// AlbumPayload is the flat response shape for album list/summary endpoints.
type AlbumPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Cover       string `json:"cover"`
	Year        *int   `json:"year"`
	Rating      int    `json:"rating"`
	Price       int    `json:"price"`
	AuthorName  string `json:"authorName"`
	TracksCount int    `json:"tracksCount"`
	Genre       string `json:"genre"`
}

// Payload computes the flat response shape from the hydrated projection.
//
// # Contract
//
// Price is the sum of the composition prices and TracksCount their number.
// AuthorName and Genre are the FIRST element of the respective collection in
// store enumeration order, or the empty string when the collection is empty.
// When several exist the choice is not guaranteed to be deterministic.
func (projection *AlbumProjection) Payload() AlbumPayload {
	price := 0
	for _, trackPrice := range projection.TrackPrices {
		price += trackPrice
	}

	return AlbumPayload{
		ID:          projection.ID,
		Title:       projection.Title,
		Cover:       projection.Cover,
		Year:        projection.Year,
		Rating:      projection.Rating,
		Price:       price,
		AuthorName:  firstOrEmpty(projection.AuthorNames),
		TracksCount: len(projection.TrackPrices),
		Genre:       firstOrEmpty(projection.GenreNames),
	}
}

// AlbumPayloads maps a projection slice to its payload slice.
func AlbumPayloads(projections []*AlbumProjection) []AlbumPayload {
	payloads := make([]AlbumPayload, 0, len(projections))
	for _, projection := range projections {
		payloads = append(payloads, projection.Payload())
	}
	return payloads
}

// firstOrEmpty returns the first element, or "" for an empty slice.
func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
