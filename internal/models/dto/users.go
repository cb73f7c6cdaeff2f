package dto

type CreateUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name"`
	Country     *string `json:"country"`
	State       *string `json:"state"`
	City        *string `json:"city"`
}

// UpdateUserRequest carries a partial update. Nil fields keep their stored
// values; unknown JSON fields are dropped at decode time.
type UpdateUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	DisplayName *string `json:"display_name"`
	Country     *string `json:"country"`
	State       *string `json:"state"`
	City        *string `json:"city"`
}
