// Copyright (c) 2026 audio-server. All rights reserved.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mfungorn/audio-server/internal/catalog"
)

/*
TestEscapeLikePrefix verifies that search prefixes match literally: LIKE
metacharacters in user input must not widen a starts-with query.
*/
func TestEscapeLikePrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"plain", "Muse", "Muse"},
		{"percent", "%e", `\%e`},
		{"underscore", "a_b", `a\_b`},
		{"backslash", `C:\`, `C:\\`},
		{"mixed", `10%_\`, `10\%\_\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.EscapeLikePrefix(tt.prefix))
		})
	}
}
