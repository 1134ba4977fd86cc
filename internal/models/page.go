package models

// ContactPage is one page of a contact search.
type ContactPage struct {
	Contacts    []Contact
	Total       int
	CurrentPage int
	PerPage     int
}

// LastPage is the number of the final page, at least 1.
func (p ContactPage) LastPage() int {
	if p.PerPage < 1 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Bounds returns the 1-based positions of the first and last rows on the page.
// ok is false when the page is empty.
func (p ContactPage) Bounds() (from, to int, ok bool) {
	if len(p.Contacts) == 0 {
		return 0, 0, false
	}
	from = (p.CurrentPage-1)*p.PerPage + 1
	return from, from + len(p.Contacts) - 1, true
}
