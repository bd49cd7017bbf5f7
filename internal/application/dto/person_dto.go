package dto

// RegisterCustomerRequest entrada para registrar un cliente.
type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document" validate:"required,min=1,max=50"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CustomerResponse cliente registrado.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RegisterAdvisorRequest entrada para registrar un asesor.
type RegisterAdvisorRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document" validate:"required,min=1,max=50"`
	Email    string `json:"email,omitempty"`
}

// AdvisorResponse asesor registrado.
type AdvisorResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
}
