package response

import (
	"time"

	"airline-ticketing/internal/data/entity"
)

type ProfileResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Patronymic     *string `json:"patronymic,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	PassportNumber *string `json:"passport_number,omitempty"`
	Birthday       *string `json:"birthday,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ProfileToResponse(user *entity.User, account *entity.Account) ProfileResponse {
	resp := ProfileResponse{
		ID:             user.ID.String(),
		Email:          account.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Patronymic:     user.Patronymic,
		Phone:          user.Phone,
		PassportNumber: user.PassportNumber,
		CreatedAt:      user.CreatedAt,
	}

	if user.Birthday != nil {
		birthday := user.Birthday.Format("2006-01-02")
		resp.Birthday = &birthday
	}

	return resp
}

type TicketResponse struct {
	ID               string    `json:"id"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	ClassName        string    `json:"class_name"`
	SeatNumber       string    `json:"seat_number"`
	Price            float64   `json:"price"`
	Status           string    `json:"status"`
	BaggageTag       *string   `json:"baggage_tag,omitempty"`
	PurchasedAt      time.Time `json:"purchased_at"`
}
