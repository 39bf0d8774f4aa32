package ingest

import "hotelinv/internal/domains/booking/model"

// FromSheet turns stored sheet rows back into raw rows so that a reload goes
// through the same normalization as any other source.
func FromSheet(rows []model.SheetRow) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := Row{
			string(FieldBookingID):    Text(r.BookingID),
			string(FieldGuestName):    Text(r.GuestName),
			string(FieldGeniusMember): Bool(r.IsGeniusMember),
			string(FieldRoomType):     Text(r.RoomType),
			string(FieldLocation):     Text(r.Location),
			string(FieldCheckIn):      Date(r.CheckIn),
			string(FieldCheckOut):     Date(r.CheckOut),
			string(FieldStatus):       Text(r.Status),
			string(FieldTotalPayment): Number(r.TotalPayment),
			string(FieldCommission):   Number(r.Commission),
			string(FieldCurrency):     Text(r.Currency),
			string(FieldCollectedBy):  Text(r.CollectedBy),
		}
		if r.BookingMadeOn != nil {
			row[string(FieldBookingMadeOn)] = Date(*r.BookingMadeOn)
		}
		out = append(out, row)
	}
	return out
}

