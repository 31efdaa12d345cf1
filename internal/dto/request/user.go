package request

type UpdateProfileRequest struct {
	FirstName      string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName       string  `json:"last_name" validate:"required,min=1,max=100"`
	Patronymic     *string `json:"patronymic,omitempty" validate:"omitempty,max=100"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	PassportNumber *string `json:"passport_number,omitempty" validate:"omitempty,min=6,max=20"`
	// Birthday in YYYY-MM-DD.
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
