package vacation

import (
	"time"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/types"
	vacationDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/vacation"
)

// Request is a vacation request. The day span is computed once at submission
// and stored; the balance calculation sums it for approved requests only.
type Request struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	DaysRequested int       `json:"daysRequested"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Employee is the slice of the account a balance calculation needs.
type Employee struct {
	ID        int64
	Name      string
	Surname   string
	StartDate time.Time
}

// BalanceView is the response of GET /vacations/balance. The
// diasDisponibles key is part of the public contract.
type BalanceView struct {
	Name            string  `json:"name"`
	Surname         string  `json:"surname"`
	DiasDisponibles float64 `json:"diasDisponibles"`
}

// RequesterProfile is the public slice of the requester joined onto each
// request in the admin listing.
type RequesterProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type RequestWithRequester struct {
	Request
	User RequesterProfile `json:"user"`
}

func FromDataModel(r *vacationDatamodel.Request) *Request {
	return &Request{
		ID:            r.ID,
		UserID:        r.UserID,
		StartDate:     string(r.StartDate),
		EndDate:       string(r.EndDate),
		DaysRequested: r.DaysRequested,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToDataModel(r *Request) *vacationDatamodel.Request {
	return &vacationDatamodel.Request{
		ID:            r.ID,
		UserID:        r.UserID,
		StartDate:     types.DateString(r.StartDate),
		EndDate:       types.DateString(r.EndDate),
		DaysRequested: r.DaysRequested,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
