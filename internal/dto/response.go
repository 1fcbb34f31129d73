package dto

import (
	"time"

	"github.com/Eursukkul/partywknd/internal/models"
)

// DateLayout is the wire format of Event.date.
const DateLayout = "2006-01-02"

type EventResponse struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	City  string   `json:"city"`
	Venue string   `json:"venue"`
	Date  string   `json:"date"`
	Price float64  `json:"price"`
	Tags  []string `json:"tags"`
}

type LodgingResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

type PackageResponse struct {
	ID        string               `json:"id"`
	Status    models.PackageStatus `json:"status"`
	Addons    map[string]any       `json:"addons"`
	CreatedAt time.Time            `json:"created_at"`
	Lodging   *LodgingResponse     `json:"lodging"`
	Events    []EventResponse      `json:"events"`
}

type BookingResponse struct {
	ID        string               `json:"id"`
	Status    models.BookingStatus `json:"status"`
	PackageID string               `json:"package_id"`
	UserID    string               `json:"user_id"`
	CreatedAt time.Time            `json:"created_at"`
}

type MessageResponse struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	PackageID     *string   `json:"package_id"`
	MessageText   string    `json:"message_text"`
	AttachmentURL *string   `json:"attachment_url"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type AgentResponse struct {
	ID          string        `json:"id"`
	UserID      *string       `json:"user_id"`
	DisplayName string        `json:"display_name"`
	User        *UserResponse `json:"user,omitempty"`
}

type AdminUserResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) EventResponse {
	tags := []string(e.Tags)
	if tags == nil {
		tags = []string{}
	}
	return EventResponse{
		ID:    e.ID,
		Title: e.Title,
		City:  e.City,
		Venue: e.Venue,
		Date:  time.Time(e.Date).Format(DateLayout),
		Price: e.Price,
		Tags:  tags,
	}
}

func ToLodgingResponse(l *models.Lodging) LodgingResponse {
	return LodgingResponse{
		ID:       l.ID,
		Name:     l.Name,
		Location: l.Location,
		Price:    l.Price,
	}
}

func ToPackageResponse(p *models.Package) PackageResponse {
	resp := PackageResponse{
		ID:        p.ID,
		Status:    p.Status,
		Addons:    p.Addons,
		CreatedAt: p.CreatedAt,
		Events:    make([]EventResponse, len(p.Events)),
	}
	if p.Lodging != nil {
		l := ToLodgingResponse(p.Lodging)
		resp.Lodging = &l
	}
	for i := range p.Events {
		resp.Events[i] = ToEventResponse(&p.Events[i])
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Status:    b.Status,
		PackageID: b.PackageID,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt,
	}
}

func ToMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		PackageID:     m.PackageID,
		MessageText:   m.MessageText,
		AttachmentURL: m.AttachmentURL,
		CreatedAt:     m.CreatedAt,
	}
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, IsActive: u.IsActive}
}

func ToAgentResponse(a *models.Agent) AgentResponse {
	resp := AgentResponse{ID: a.ID, UserID: a.UserID, DisplayName: a.DisplayName}
	if a.User != nil {
		u := ToUserResponse(a.User)
		resp.User = &u
	}
	return resp
}

func ToAdminUserResponse(a *models.AdminUser) AdminUserResponse {
	return AdminUserResponse{ID: a.ID, Email: a.Email, Role: a.Role}
}
