package rest

import (
	"time"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/librarian"
)

type bookResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	PublishedOn  string  `json:"published_on"`
	ISBN         string  `json:"isbn"`
	Synopsis     string  `json:"synopsis"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
	CoverURL     *string `json:"cover_url"`
	Pages        int     `json:"pages"`
	Language     string  `json:"language"`
	Available    bool    `json:"available"`
	CreatedAt    string  `json:"created_at"`
}

func toBookResponse(b domain.Book) bookResponse {
	resp := bookResponse{
		ID:           b.ID.String(),
		Title:        b.Title,
		Author:       b.Author,
		PublishedOn:  b.PublishedOn.Format(dateLayout),
		ISBN:         b.ISBN,
		Synopsis:     b.Synopsis,
		CategoryName: b.CategoryName,
		CoverURL:     b.CoverURL,
		Pages:        b.Pages,
		Language:     b.Language,
		Available:    b.Available,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.CategoryID != nil {
		id := b.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

type bookPageResponse struct {
	Books  []bookResponse `json:"books"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID.String(), Name: c.Name, Description: c.Description}
}

func toCategoryResponses(cats []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

type reservationResponse struct {
	ID         string  `json:"id"`
	BookID     string  `json:"book_id"`
	BookTitle  string  `json:"book_title,omitempty"`
	UserName   string  `json:"user_name"`
	UserEmail  string  `json:"user_email"`
	CreatedAt  string  `json:"created_at"`
	DueAt      string  `json:"due_at"`
	ReturnedAt *string `json:"returned_at"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

func toReservationResponse(r domain.Reservation) reservationResponse {
	resp := reservationResponse{
		ID:        r.ID.String(),
		BookID:    r.BookID.String(),
		BookTitle: r.BookTitle,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		DueAt:     r.DueAt.UTC().Format(time.RFC3339),
		Status:    r.Status.String(),
		Notes:     r.Notes,
	}
	if r.ReturnedAt != nil {
		v := r.ReturnedAt.UTC().Format(time.RFC3339)
		resp.ReturnedAt = &v
	}
	return resp
}

func toReservationResponses(rs []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationResponse(r))
	}
	return out
}

type transitionResponse struct {
	// Updated is false when the reservation was no longer active.
	Updated     bool                `json:"updated"`
	Reservation reservationResponse `json:"reservation"`
}

type queryResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Answer    string `json:"answer"`
	Answered  bool   `json:"answered"`
	CreatedAt string `json:"created_at"`
}

func toQueryResponse(q domain.Query) queryResponse {
	return queryResponse{
		ID:        q.ID.String(),
		Text:      q.Text,
		Answer:    q.Answer,
		Answered:  q.IsAnswered(),
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type statisticsResponse struct {
	TotalBooks          int                  `json:"total_books"`
	AvailableBooks      int                  `json:"available_books"`
	UnavailableBooks    int                  `json:"unavailable_books"`
	ActiveReservations  int                  `json:"active_reservations"`
	ExpiredReservations int                  `json:"expired_reservations"`
	TopReserved         []topReservedResponse `json:"top_reserved"`
}

type topReservedResponse struct {
	BookID           string `json:"book_id"`
	Title            string `json:"title"`
	ReservationCount int    `json:"reservation_count"`
}

func toStatisticsResponse(s domain.Statistics) statisticsResponse {
	resp := statisticsResponse{
		TotalBooks:          s.TotalBooks,
		AvailableBooks:      s.AvailableBooks,
		UnavailableBooks:    s.UnavailableBooks,
		ActiveReservations:  s.ActiveReservations,
		ExpiredReservations: s.ExpiredReservations,
		TopReserved:         make([]topReservedResponse, 0, len(s.TopReserved)),
	}
	for _, t := range s.TopReserved {
		resp.TopReserved = append(resp.TopReserved, topReservedResponse{
			BookID:           t.BookID.String(),
			Title:            t.Title,
			ReservationCount: t.ReservationCount,
		})
	}
	return resp
}

// assistantResponse mirrors librarian.Response. Fields that do not belong
// to the response kind are omitted.
type assistantResponse struct {
	Type        string         `json:"type"`
	Answer      string         `json:"answer,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Books       []bookResponse `json:"books,omitempty"`
	Available   []bookResponse `json:"available,omitempty"`
	Unavailable []bookResponse `json:"unavailable,omitempty"`
}

func toAssistantResponse(r *librarian.Response) assistantResponse {
	resp := assistantResponse{Type: string(r.Kind)}
	switch r.Kind {
	case librarian.KindSearch:
		resp.Explanation = r.Explanation
		resp.Suggestions = r.Suggestions
		resp.Books = toBookResponses(r.Books)
	case librarian.KindAvailability:
		resp.Explanation = r.Explanation
		resp.Available = toBookResponses(r.Available)
		resp.Unavailable = toBookResponses(r.Unavailable)
	default:
		resp.Answer = r.Explanation
	}
	return resp
}

type searchResponse struct {
	Books       []bookResponse `json:"books"`
	Explanation string         `json:"explanation"`
	Suggestions []string       `json:"suggestions"`
}

func toSearchResponse(r *librarian.SearchResult) searchResponse {
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return searchResponse{
		Books:       toBookResponses(r.Books),
		Explanation: r.Explanation,
		Suggestions: suggestions,
	}
}

type availabilityResponse struct {
	BookID        string  `json:"book_id"`
	Title         string  `json:"title"`
	Available     bool    `json:"available"`
	DueAt         *string `json:"due_at,omitempty"`
	RemainingDays *int    `json:"remaining_days,omitempty"`
}

func toAvailabilityResponse(a *librarian.Availability) availabilityResponse {
	resp := availabilityResponse{
		BookID:        a.BookID.String(),
		Title:         a.Title,
		Available:     a.Available,
		RemainingDays: a.RemainingDays,
	}
	if a.DueAt != nil {
		v := a.DueAt.UTC().Format(time.RFC3339)
		resp.DueAt = &v
	}
	return resp
}
