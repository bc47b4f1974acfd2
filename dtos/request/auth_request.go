package request

type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Csid  string `json:"csid" validate:"required"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Csid  string `json:"csid" validate:"required"`
}

type EnrollRequest struct {
	Uid  string `json:"uid" validate:"required"`
	Csid string `json:"csid" validate:"required"`
}

type UserCheckRequest struct {
	Email string `json:"email" validate:"required,email"`
	Mode  string `json:"mode" validate:"required,oneof=login register"`
}
