package main

import (
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/librarian"
)

type statsOutput struct {
	TotalBooks          int             `json:"total_books"`
	AvailableBooks      int             `json:"available_books"`
	UnavailableBooks    int             `json:"unavailable_books"`
	ActiveReservations  int             `json:"active_reservations"`
	ExpiredReservations int             `json:"expired_reservations"`
	TopReserved         []topBookOutput `json:"top_reserved"`
}

type topBookOutput struct {
	BookID           string `json:"book_id"`
	Title            string `json:"title"`
	ReservationCount int    `json:"reservation_count"`
}

func toStatsOutput(s domain.Statistics) statsOutput {
	out := statsOutput{
		TotalBooks:          s.TotalBooks,
		AvailableBooks:      s.AvailableBooks,
		UnavailableBooks:    s.UnavailableBooks,
		ActiveReservations:  s.ActiveReservations,
		ExpiredReservations: s.ExpiredReservations,
		TopReserved:         make([]topBookOutput, 0, len(s.TopReserved)),
	}
	for _, t := range s.TopReserved {
		out.TopReserved = append(out.TopReserved, topBookOutput{
			BookID:           t.BookID.String(),
			Title:            t.Title,
			ReservationCount: t.ReservationCount,
		})
	}
	return out
}

type bookOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

type answerOutput struct {
	Kind        string       `json:"kind"`
	Answer      string       `json:"answer,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Books       []bookOutput `json:"books,omitempty"`
	Available   []bookOutput `json:"available,omitempty"`
	Unavailable []bookOutput `json:"unavailable,omitempty"`
}

func toBookOutputs(books []domain.Book) []bookOutput {
	if len(books) == 0 {
		return nil
	}
	out := make([]bookOutput, len(books))
	for i, b := range books {
		out[i] = bookOutput{ID: b.ID.String(), Title: b.Title, Author: b.Author, Available: b.Available}
	}
	return out
}

func toAnswerOutput(r *librarian.Response) answerOutput {
	return answerOutput{
		Kind:        string(r.Kind),
		Answer:      r.Explanation,
		Suggestions: r.Suggestions,
		Books:       toBookOutputs(r.Books),
		Available:   toBookOutputs(r.Available),
		Unavailable: toBookOutputs(r.Unavailable),
	}
}
