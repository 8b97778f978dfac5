package application

import (
	"time"

	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-platform/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
)

// Clock supplies the instant used as "now" by time-dependent rules.
type Clock func() time.Time

func defaultClock() time.Time { return time.Now() }

// UserDTO is the API representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemDTO is the API representation of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// CommentDTO is the API representation of a comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// FullItemDTO is an item with its comments and, for the owner, the
// neighbouring booking dates.
type FullItemDTO struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Available   bool                    `json:"available"`
	LastBooking *timeutil.LocalDateTime `json:"lastBooking"`
	NextBooking *timeutil.LocalDateTime `json:"nextBooking"`
	RequestID   *int64                  `json:"requestId"`
	Comments    []CommentDTO            `json:"comments"`
}

// BookingDTO is the API representation of a booking.
type BookingDTO struct {
	ID     int64                  `json:"id"`
	Start  timeutil.LocalDateTime `json:"start"`
	End    timeutil.LocalDateTime `json:"end"`
	Status string                 `json:"status"`
	Booker UserDTO                `json:"booker"`
	Item   ItemDTO                `json:"item"`
}

// ItemRequestDTO is the API representation of an item request.
type ItemRequestDTO struct {
	ID          int64                  `json:"id"`
	Description string                 `json:"description"`
	Created     timeutil.LocalDateTime `json:"created"`
	RequestorID int64                  `json:"requestorId"`
}

// ItemRequestWithItemsDTO is an item request with the items offered for it.
type ItemRequestWithItemsDTO struct {
	ItemRequestDTO
	Items []ItemDTO `json:"items"`
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}

func toItemDTO(it *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
}

func toItemDTOs(items []*itemDomain.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	return dtos
}

func toCommentDTO(c *itemDomain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: c.Author().Name(),
		Created:    c.Created(),
	}
}

func toFullItemDTO(it *itemDomain.Item, comments []CommentDTO) FullItemDTO {
	if comments == nil {
		comments = []CommentDTO{}
	}
	return FullItemDTO{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		Comments:    comments,
	}
}

func toBookingDTO(bk *bookingDomain.Booking, conv timeutil.Converter) BookingDTO {
	return BookingDTO{
		ID:     bk.ID(),
		Start:  conv.ToLocal(bk.Start()),
		End:    conv.ToLocal(bk.End()),
		Status: bk.Status().String(),
		Booker: toUserDTO(bk.Booker()),
		Item:   toItemDTO(bk.Item()),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking, conv timeutil.Converter) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk, conv)
	}
	return dtos
}

func toItemRequestDTO(r *requestDomain.ItemRequest, conv timeutil.Converter) ItemRequestDTO {
	return ItemRequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		Created:     conv.ToLocal(r.Created()),
		RequestorID: r.Requestor().ID(),
	}
}
