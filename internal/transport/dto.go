package transport

import (
	"github.com/shopspring/decimal"

	"github.com/autoshowroom/backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    Text   `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type ContactRequest struct {
	FullName        Text  `json:"full_name"    validate:"required"`
	Email           Text  `json:"email"        validate:"required"`
	PhoneNumber     Text  `json:"phone_number" validate:"required"`
	RequestType     *Text `json:"request_type"`
	CarType         *Text `json:"car_type"`
	Budget          *Text `json:"budget"`
	DetailedMessage *Text `json:"detailed_message"`
}

// ProductRequest is used by both create and update. ImageURL is the legacy
// spelling of Image and is folded into it by Normalize.
type ProductRequest struct {
	Name        string           `json:"name"  validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Description *string          `json:"description"`
	Image       string           `json:"image" validate:"required"`
	ImageURL    string           `json:"image_url" validate:"-"`
}

func (r *ProductRequest) Normalize() {
	if r.Image == "" {
		r.Image = r.ImageURL
	}
	r.ImageURL = ""
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Image       string  `json:"image"`
}

func ToUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
		Image:       p.ImageURL,
	}
}

func ToProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// ToProductModel expects a validated request.
func ToProductModel(r ProductRequest) models.Product {
	p := models.Product{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.Image,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

func ToContactModel(r ContactRequest) models.Contact {
	return models.Contact{
		FullName:        r.FullName.String(),
		Email:           r.Email.String(),
		PhoneNumber:     r.PhoneNumber.String(),
		RequestType:     r.RequestType.Ptr(),
		CarType:         r.CarType.Ptr(),
		Budget:          r.Budget.Ptr(),
		DetailedMessage: r.DetailedMessage.Ptr(),
	}
}
