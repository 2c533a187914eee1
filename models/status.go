package models

import "fmt"

// OrderStatus adalah status pesanan pada Transaction. Transisi dibatasi oleh
// tabel di bawah; SELESAI dan DIBATALKAN adalah status terminal.
type OrderStatus string

const (
	StatusWaiting    OrderStatus = "MENUNGGU"
	StatusProcessing OrderStatus = "DIPROSES"
	StatusDone       OrderStatus = "SELESAI"
	StatusCancelled  OrderStatus = "DIBATALKAN"
)

var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusWaiting:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusDone, StatusCancelled},
	StatusDone:       {},
	StatusCancelled:  {},
}

// ParseOrderStatus memvalidasi string status dari request.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusWaiting, StatusProcessing, StatusDone, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("status tidak dikenal: %q", s)
}

// CanTransition melapor apakah perpindahan dari s ke next diizinkan.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal melapor apakah s tidak punya transisi keluar.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}
