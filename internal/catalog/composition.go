// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

// Composition represents a single track.
//
// Rating follows the same monotonic favorite-counter rule as [Author.Rating].
type Composition struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"` // seconds
	Text     string `json:"text"`     // lyrics, may be empty
	Price    int    `json:"price"`
	Cover    string `json:"cover"`
	Rating   int    `json:"rating"`
}

// CompositionProjection is a composition hydrated with the related names
// needed to build its flat response payload.
type CompositionProjection struct {
	Composition

	// AuthorNames are the names of the composition's authors.
	AuthorNames []string

	// GenreNames are the names of the composition's genres.
	GenreNames []string
}

// CompositionPayload is the flat response shape for composition endpoints.
type CompositionPayload struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Duration   int    `json:"duration"`
	Text       string `json:"text"`
	Price      int    `json:"price"`
	Rating     int    `json:"rating"`
	Cover      string `json:"cover"`
	AuthorName string `json:"authorName"`
	Genre      string `json:"genre"`
}

// Payload computes the flat response shape from the hydrated projection.
//
// AuthorName and Genre follow the same first-or-empty contract as
// [AlbumProjection.Payload].
func (projection *CompositionProjection) Payload() CompositionPayload {
	return CompositionPayload{
		ID:         projection.ID,
		Title:      projection.Title,
		Duration:   projection.Duration,
		Text:       projection.Text,
		Price:      projection.Price,
		Rating:     projection.Rating,
		Cover:      projection.Cover,
		AuthorName: firstOrEmpty(projection.AuthorNames),
		Genre:      firstOrEmpty(projection.GenreNames),
	}
}

// CompositionPayloads maps a projection slice to its payload slice.
func CompositionPayloads(projections []*CompositionProjection) []CompositionPayload {
	payloads := make([]CompositionPayload, 0, len(projections))
	for _, projection := range projections {
		payloads = append(payloads, projection.Payload())
	}
	return payloads
}
