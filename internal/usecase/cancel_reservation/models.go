package cancel_reservation

// Request модель запроса отмены брони владельцем
type Request struct {
	ID       string
	Name     string
	Phone    string
	Password string
}
