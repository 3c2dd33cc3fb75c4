package models

// TourPackage is the canonical package record. The legacy capitalized wire
// shape (Title/Price/Availabedate/_id) is mapped at the HTTP boundary only.
type TourPackage struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          int64    `json:"price"`
	AvailableDates []string `json:"availableDates"`
	Image          string   `json:"image"`
}

// FirstAvailableDate returns the date exposed on the legacy wire, which
// carries a single Availabedate string per record.
func (p TourPackage) FirstAvailableDate() string {
	if len(p.AvailableDates) == 0 {
		return ""
	}
	return p.AvailableDates[0]
}
