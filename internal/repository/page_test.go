package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_SnapsToPageBoundary(t *testing.T) {
	// from values inside the same page resolve to the same offset
	assert.Equal(t, Page{Limit: 10, Offset: 0}, NewPage(0, 10))
	assert.Equal(t, Page{Limit: 10, Offset: 0}, NewPage(5, 10))
	assert.Equal(t, Page{Limit: 10, Offset: 0}, NewPage(9, 10))
	assert.Equal(t, Page{Limit: 10, Offset: 10}, NewPage(10, 10))
	assert.Equal(t, Page{Limit: 10, Offset: 10}, NewPage(19, 10))
	assert.Equal(t, Page{Limit: 3, Offset: 6}, NewPage(7, 3))
}
