package model

// WaitlistEntry is one party waiting to be seated.  This struct corresponds
// to a row in the `waitlist` table and is serialized with the column names
// the host application already uses.
//
// Fields:
//
//	ID             – primary key, assigned by the store.
//	LastName       – customer last name (cust_LName).
//	FirstName      – customer first name (cust_FName).
//	Phone          – contact number.
//	PartySize      – number of guests, at least 1.
//	PositionInLine – caller-managed queue position; not unique.
//	CheckInDate    – YYYY-MM-DD.
//	CheckInTime    – HH:MM:SS.
//	IsDeleted      – soft-delete flag; deleted rows are hidden from reads.
type WaitlistEntry struct {
	ID             uint64 `json:"id"`
	LastName       string `json:"cust_LName"`
	FirstName      string `json:"cust_FName"`
	Phone          string `json:"phone_num"`
	PartySize      int    `json:"party_size"`
	PositionInLine int    `json:"position_inLine"`
	CheckInDate    string `json:"checkIn_date"`
	CheckInTime    string `json:"checkIn_time"`
	IsDeleted      bool   `json:"is_deleted"`
}

// WaitlistFields are the eight caller-supplied columns written by Create and
// Update.
type WaitlistFields struct {
	LastName       string `json:"cust_LName" validate:"max=64"`
	FirstName      string `json:"cust_FName" validate:"max=64"`
	Phone          string `json:"phone_num" validate:"max=32"`
	PartySize      int    `json:"party_size" validate:"min=1"`
	PositionInLine int    `json:"position_inLine"`
	CheckInDate    string `json:"checkIn_date" validate:"datetime=2006-01-02"`
	CheckInTime    string `json:"checkIn_time" validate:"datetime=15:04:05"`
	IsDeleted      bool   `json:"is_deleted"`
}

// Entry combines the fields with an id.
func (f WaitlistFields) Entry(id uint64) WaitlistEntry {
	return WaitlistEntry{
		ID:             id,
		LastName:       f.LastName,
		FirstName:      f.FirstName,
		Phone:          f.Phone,
		PartySize:      f.PartySize,
		PositionInLine: f.PositionInLine,
		CheckInDate:    f.CheckInDate,
		CheckInTime:    f.CheckInTime,
		IsDeleted:      f.IsDeleted,
	}
}
