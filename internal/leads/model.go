package leads

// Record is the canonical lead shape written to the sheet. Field order
// mirrors the sheet's column order exactly; the writer never inspects the
// header row, so Row() is the positional contract.
type Record struct {
	Timestamp     string `json:"timestamp"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	State         string `json:"state"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Days          string `json:"days"`
	Travellers    string `json:"travellers"`
	Rooms         string `json:"rooms"`
	HotelCategory string `json:"hotel_category"`
	Guide         string `json:"guide"`
	Vehicle       string `json:"vehicle"`
	Package       string `json:"package"`
	Source        string `json:"source"`
	Message       string `json:"message"`
	Status        string `json:"status"`
}

// RecordColumns is the number of sheet columns a Record occupies.
const RecordColumns = 17

// Row returns the record as one sheet row in fixed column order.
func (r *Record) Row() []interface{} {
	return []interface{}{
		r.Timestamp,
		r.Name,
		r.Phone,
		r.Email,
		r.State,
		r.StartDate,
		r.EndDate,
		r.Days,
		r.Travellers,
		r.Rooms,
		r.HotelCategory,
		r.Guide,
		r.Vehicle,
		r.Package,
		r.Source,
		r.Message,
		r.Status,
	}
}
