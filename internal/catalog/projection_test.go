// Copyright (c) 2026 audio-server. All rights reserved.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/pkg/pointer"
)

/*
TestAlbumProjection_Payload verifies that album price and track count are
derived from the track prices, never stored.
*/
func TestAlbumProjection_Payload(t *testing.T) {
	tests := []struct {
		name       string
		projection catalog.AlbumProjection
		wantPrice  int
		wantTracks int
		wantAuthor string
		wantGenre  string
	}{
		{
			name: "full_album",
			projection: catalog.AlbumProjection{
				Album:       catalog.Album{ID: 1, Title: "Meteora", Year: pointer.To(2003), Rating: 7},
				AuthorNames: []string{"Linkin Park"},
				TrackPrices: []int{100, 150, 200},
				GenreNames:  []string{"Nu Metal", "Rock"},
			},
			wantPrice:  450,
			wantTracks: 3,
			wantAuthor: "Linkin Park",
			wantGenre:  "Nu Metal",
		},
		{
			name: "empty_album",
			projection: catalog.AlbumProjection{
				Album: catalog.Album{ID: 2, Title: "Unreleased"},
			},
			wantPrice:  0,
			wantTracks: 0,
			wantAuthor: "",
			wantGenre:  "",
		},
		{
			name: "free_tracks",
			projection: catalog.AlbumProjection{
				Album:       catalog.Album{ID: 3, Title: "Demos"},
				AuthorNames: []string{"Muse", "Matt Bellamy"},
				TrackPrices: []int{0, 0},
			},
			wantPrice:  0,
			wantTracks: 2,
			wantAuthor: "Muse",
			wantGenre:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.projection.Payload()

			assert.Equal(t, tt.wantPrice, payload.Price)
			assert.Equal(t, tt.wantTracks, payload.TracksCount)
			assert.Equal(t, tt.wantAuthor, payload.AuthorName)
			assert.Equal(t, tt.wantGenre, payload.Genre)
			assert.Equal(t, tt.projection.Title, payload.Title)
			assert.Equal(t, tt.projection.Rating, payload.Rating)
		})
	}
}

/*
TestCompositionProjection_Payload verifies that the flat composition shape
carries the first author and genre, or empty strings when unlinked.
*/
func TestCompositionProjection_Payload(t *testing.T) {
	projection := catalog.CompositionProjection{
		Composition: catalog.Composition{
			ID:       10,
			Title:    "Numb",
			Duration: 185,
			Price:    120,
			Rating:   42,
		},
		AuthorNames: []string{"Linkin Park"},
		GenreNames:  []string{"Nu Metal"},
	}

	payload := projection.Payload()

	assert.Equal(t, int64(10), payload.ID)
	assert.Equal(t, "Numb", payload.Title)
	assert.Equal(t, 185, payload.Duration)
	assert.Equal(t, 120, payload.Price)
	assert.Equal(t, 42, payload.Rating)
	assert.Equal(t, "Linkin Park", payload.AuthorName)
	assert.Equal(t, "Nu Metal", payload.Genre)
}

func TestCompositionProjection_Payload_Unlinked(t *testing.T) {
	projection := catalog.CompositionProjection{
		Composition: catalog.Composition{ID: 11, Title: "Untitled"},
	}

	payload := projection.Payload()

	assert.Equal(t, "", payload.AuthorName)
	assert.Equal(t, "", payload.Genre)
}

/*
TestAlbumPayloads checks that slice mapping preserves order and always
produces a non-nil slice so JSON renders [] instead of null.
*/
func TestAlbumPayloads(t *testing.T) {
	first := &catalog.AlbumProjection{Album: catalog.Album{ID: 1, Title: "A"}}
	second := &catalog.AlbumProjection{Album: catalog.Album{ID: 2, Title: "B"}}

	payloads := catalog.AlbumPayloads([]*catalog.AlbumProjection{first, second})
	assert.Len(t, payloads, 2)
	assert.Equal(t, "A", payloads[0].Title)
	assert.Equal(t, "B", payloads[1].Title)

	assert.NotNil(t, catalog.AlbumPayloads(nil))
	assert.Empty(t, catalog.AlbumPayloads(nil))
}

func TestCompositionPayloads_Empty(t *testing.T) {
	payloads := catalog.CompositionPayloads(nil)
	assert.NotNil(t, payloads)
	assert.Empty(t, payloads)
}
