package persisters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListContactsParamsFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		params ListContactsParams
		sort   string
		dir    string
	}{
		{
			name:   "defaults",
			params: ListContactsParams{},
			sort:   SortByCreatedAt,
			dir:    DirDesc,
		},
		{
			name:   "valid values pass through",
			params: ListContactsParams{Sort: SortByName, Dir: DirAsc},
			sort:   SortByName,
			dir:    DirAsc,
		},
		{
			name:   "unknown column falls back",
			params: ListContactsParams{Sort: "email", Dir: DirAsc},
			sort:   SortByCreatedAt,
			dir:    DirAsc,
		},
		{
			name:   "injection attempt falls back",
			params: ListContactsParams{Sort: "name; DROP TABLE contacts", Dir: "ascending"},
			sort:   SortByCreatedAt,
			dir:    DirDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sort, tt.params.SortColumn())
			assert.Equal(t, tt.dir, tt.params.Direction())
		})
	}
}

func TestListContactsParamsPaging(t *testing.T) {
	assert.Equal(t, 1, ListContactsParams{}.PageNumber())
	assert.Equal(t, 1, ListContactsParams{Page: -3}.PageNumber())
	assert.Equal(t, 7, ListContactsParams{Page: 7}.PageNumber())

	assert.Equal(t, DefaultPerPage, ListContactsParams{}.PageSize())
	assert.Equal(t, DefaultPerPage, ListContactsParams{PerPage: -1}.PageSize())
	assert.Equal(t, 25, ListContactsParams{PerPage: 25}.PageSize())
}
