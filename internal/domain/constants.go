package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Showroom identity used in notifications and calendar invites
const (
	ShowroomName     = "Pacohlim Showroom"
	ShowroomLocation = "3F, 27 Seongsui-ro, Seongdong-gu, Seoul"
)

// Visit parameters
const (
	VisitDurationMinutes = 60
)

// Calendar grid dimensions: 6 weeks by 7 days
const (
	CalendarCells = 42
)

// Request validation limits
const (
	MinNameLength     = 2
	MinPhoneDigits    = 9
	MinPasswordLength = 4
)

// Operation limits
const (
	LookupLimit        = 20  // строк в самостоятельном поиске броней
	ReminderBatchLimit = 200 // броней в одной партии напоминаний
)

// DefaultChannel канал, через который принята заявка
const DefaultChannel = "web"
