package repository

// Page carries limit/offset derived from the from/size query parameters.
// The offset snaps to a page boundary: page index is from/size, so a from
// that is not a multiple of size rounds down to the start of its page.
type Page struct {
	Limit  int
	Offset int
}

func NewPage(from, size int) Page {
	page := from / size
	return Page{Limit: size, Offset: page * size}
}
