// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package catalog implements the music catalog domain: authors, albums,
compositions, and genres, together with the many-to-many relationship graph
that ties them together.

Architecture:

  - Entities: flat relational records identified by numeric primary keys.
  - Relationships: persisted as join-table rows, never as object back-references.
    A single row IS the symmetric link, so adding one side automatically adds
    the other — there is no way for the two directions to disagree.
  - Derived fields: album price, track counts, and author/album genres are
    recomputed on read, never stored.

The entity graph is cyclic by nature (authors reference compositions reference
albums reference authors), which is why the whole catalog lives in one package
split across per-entity files.
*/
package catalog

// Author represents a musician or band in the catalog.
//
// Rating is a monotonically increasing counter: it grows by one each time a
// distinct customer favorites the author, and is never decremented.
type Author struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Logo   string `json:"logo"`
	Rating int    `json:"rating"`

	// Genres is derived from the author's compositions and hydrated only on
	// single-entity reads. It is never written directly.
	Genres []string `json:"genres,omitempty"`
}

// DefaultAuthorBio is used when an author is created without a biography.
const DefaultAuthorBio = "No bio"

const (
	FieldID    = "id"
	FieldName  = "name"
	FieldTitle = "title"
	FieldBio   = "bio"
	FieldLogo  = "logo"
	FieldCover = "cover"
)
