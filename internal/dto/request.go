package dto

import (
	"time"

	"github.com/Eursukkul/partywknd/internal/models"
	"gorm.io/datatypes"
)

// UpsertEventRequest is both the admin form and the catalog feed body.
type UpsertEventRequest struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	City  string   `json:"city"`
	Venue string   `json:"venue"`
	Date  string   `json:"date"`
	Price float64  `json:"price"`
	Tags  []string `json:"tags"`
}

type UpsertLodgingRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

type UpdatePackageRequest struct {
	LodgingID *string        `json:"lodging_id"`
	EventIDs  []string       `json:"event_ids"`
	Addons    map[string]any `json:"addons"`
}

type PackageStatusRequest struct {
	Status string `json:"status"`
}

// ChangeRequestRequest requires notes to be present; an empty string is allowed.
type ChangeRequestRequest struct {
	Notes *string `json:"notes"`
}

type CreateBookingRequest struct {
	PackageID    string `json:"package_id"`
	UserID       string `json:"user_id"`
	PaymentToken string `json:"payment_token"`
}

type SendMessageRequest struct {
	SenderID      string  `json:"sender_id"`
	ReceiverID    string  `json:"receiver_id"`
	PackageID     *string `json:"package_id"`
	MessageText   string  `json:"message_text"`
	AttachmentURL *string `json:"attachment_url"`
}

type CreateUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateAgentRequest struct {
	ID          string  `json:"id"`
	UserID      *string `json:"user_id"`
	DisplayName string  `json:"display_name"`
}

type CreateAdminRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToEventModel parses the wire date and builds the model to upsert.
func (r UpsertEventRequest) ToEventModel() (*models.Event, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	return &models.Event{
		ID:    r.ID,
		Title: r.Title,
		City:  r.City,
		Venue: r.Venue,
		Date:  datatypes.Date(date),
		Price: r.Price,
		Tags:  r.Tags,
	}, nil
}

func (r UpsertLodgingRequest) ToLodgingModel() *models.Lodging {
	return &models.Lodging{
		ID:       r.ID,
		Name:     r.Name,
		Location: r.Location,
		Price:    r.Price,
	}
}
