package ingest

type Source string

const (
	SourceSpreadsheet Source = "spreadsheet"
	SourceHTML        Source = "html"
	SourcePDF         Source = "pdf"
	SourceImage       Source = "image"
	SourceSheet       Source = "sheet"
	SourceManual      Source = "manual"
)

// Field is a canonical booking attribute.
type Field string

const (
	FieldBookingID     Field = "booking_id"
	FieldGuestName     Field = "guest_name"
	FieldGeniusMember  Field = "is_genius_member"
	FieldRoomType      Field = "room_type"
	FieldLocation      Field = "location"
	FieldCheckIn       Field = "check_in"
	FieldCheckOut      Field = "check_out"
	FieldBookingMadeOn Field = "booking_made_on"
	FieldStatus        Field = "status"
	FieldTotalPayment  Field = "total_payment"
	FieldCommission    Field = "commission"
	FieldCurrency      Field = "currency"
	FieldCollectedBy   Field = "collected_by"
)

var canonicalFields = []Field{
	FieldBookingID,
	FieldGuestName,
	FieldGeniusMember,
	FieldRoomType,
	FieldLocation,
	FieldCheckIn,
	FieldCheckOut,
	FieldBookingMadeOn,
	FieldStatus,
	FieldTotalPayment,
	FieldCommission,
	FieldCurrency,
	FieldCollectedBy,
}

// Spreadsheet column headers, shared by the xlsx/csv exports and the printable reports.
const (
	LabelCheckIn       = "Ngày đến"
	LabelCheckOut      = "Ngày đi"
	LabelBookingMadeOn = "Được đặt vào"
	LabelRoomType      = "Tên chỗ nghỉ"
	LabelLocation      = "Vị trí"
	LabelGuestName     = "Tên người đặt"
	LabelGenius        = "Thành viên Genius"
	LabelStatus        = "Tình trạng"
	LabelTotalPayment  = "Tổng thanh toán"
	LabelCommission    = "Hoa hồng"
	LabelCurrency      = "Tiền tệ"
	LabelBookingID     = "Số đặt phòng"
	LabelCollectedBy   = "Người thu tiền"
)

// alias binds a source label to a field. Within a table, an earlier alias
// outranks a later one for the same field.
type alias struct {
	label string
	field Field
}

var spreadsheetLabels = []alias{
	{LabelCheckIn, FieldCheckIn},
	{LabelCheckOut, FieldCheckOut},
	{LabelBookingMadeOn, FieldBookingMadeOn},
	{LabelRoomType, FieldRoomType},
	{LabelLocation, FieldLocation},
	{LabelGuestName, FieldGuestName},
	{LabelGenius, FieldGeniusMember},
	{LabelStatus, FieldStatus},
	{LabelTotalPayment, FieldTotalPayment},
	{LabelCommission, FieldCommission},
	{LabelCurrency, FieldCurrency},
	{LabelBookingID, FieldBookingID},
	{LabelCollectedBy, FieldCollectedBy},
}

var htmlLabels = []alias{
	{"Tên chỗ nghỉ", FieldRoomType},
	{"Phòng", FieldRoomType},
	{"Vị trí", FieldLocation},
	{"Tên người đặt", FieldGuestName},
	{"Tên khách", FieldGuestName},
	{"Thành viên Genius", FieldGeniusMember},
	{"Ngày đến", FieldCheckIn},
	{"Nhận phòng", FieldCheckIn},
	{"Ngày đi", FieldCheckOut},
	{"Trả phòng", FieldCheckOut},
	{"Được đặt vào", FieldBookingMadeOn},
	{"Tình trạng", FieldStatus},
	{"Tổng thanh toán", FieldTotalPayment},
	{"Giá", FieldTotalPayment},
	{"Hoa hồng", FieldCommission},
	{"Tiền tệ", FieldCurrency},
	{"Số đặt phòng", FieldBookingID},
	{"Mã số đặt phòng", FieldBookingID},
}

var pdfLabels = []alias{
	{"Tên chỗ nghỉ", FieldRoomType},
	{"Tên khách", FieldGuestName},
	{"Thành viên Genius", FieldGeniusMember},
	{"Vị trí", FieldLocation},
	{"Nhận phòng", FieldCheckIn},
	{"Ngày đi", FieldCheckOut},
	{"Tình trạng", FieldStatus},
	{"Tổng thanh toán", FieldTotalPayment},
	{"Hoa hồng", FieldCommission},
	{"Số đặt phòng", FieldBookingID},
	{"Được đặt vào", FieldBookingMadeOn},
}

var imageLabels = []alias{
	{"guest_name", FieldGuestName},
	{"booking_id", FieldBookingID},
	{"is_genius_member", FieldGeniusMember},
	{"check_in_date", FieldCheckIn},
	{"check_out_date", FieldCheckOut},
	{"room_type", FieldRoomType},
	{"total_payment", FieldTotalPayment},
	{"commission", FieldCommission},
	{"currency", FieldCurrency},
	{"status", FieldStatus},
	{"location", FieldLocation},
	{"collected_by", FieldCollectedBy},
	{"booking_made_on", FieldBookingMadeOn},
}

var canonicalLabels = func() []alias {
	aliases := make([]alias, 0, len(canonicalFields))
	for _, f := range canonicalFields {
		aliases = append(aliases, alias{string(f), f})
	}
	return aliases
}()

type rankedField struct {
	field Field
	rank  int
}

func index(aliases []alias) map[string]rankedField {
	m := make(map[string]rankedField, len(aliases))
	for rank, a := range aliases {
		m[a.label] = rankedField{field: a.field, rank: rank}
	}
	return m
}

var labelsBySource = map[Source]map[string]rankedField{
	SourceSpreadsheet: index(spreadsheetLabels),
	SourceHTML:        index(htmlLabels),
	SourcePDF:         index(pdfLabels),
	SourceImage:       index(imageLabels),
	SourceSheet:       index(canonicalLabels),
	SourceManual:      index(canonicalLabels),
}

func lookup(source Source, label string) (rankedField, bool) {
	labels, ok := labelsBySource[source]
	if !ok {
		return rankedField{}, false
	}
	f, ok := labels[label]
	return f, ok
}

// Lookup resolves a source label to its canonical field.
func Lookup(source Source, label string) (Field, bool) {
	f, ok := lookup(source, label)
	return f.field, ok
}

// SpreadsheetHeader lists the export column order.
func SpreadsheetHeader() []string {
	return []string{
		LabelBookingID,
		LabelGuestName,
		LabelGenius,
		LabelRoomType,
		LabelLocation,
		LabelCheckIn,
		LabelCheckOut,
		LabelBookingMadeOn,
		LabelStatus,
		LabelTotalPayment,
		LabelCommission,
		LabelCurrency,
		LabelCollectedBy,
	}
}
