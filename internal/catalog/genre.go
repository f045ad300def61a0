// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

// Genre is a named musical category.
//
// Genres attach directly to compositions only; author and album genres are
// derived transitively from their compositions on read.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
