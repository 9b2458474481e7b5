package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// Request модели

// ChangeStatusRequest запрос на ручную смену статуса кандидата
type ChangeStatusRequest struct {
	UserID        uuid.UUID `json:"-"`
	TenantID      uuid.UUID `json:"-"`
	IntervieweeID uuid.UUID `json:"-"`
	Status        string    `json:"status"`
	Note          *string   `json:"note,omitempty"` // Заменяет системный текст заметки
}

// AddNoteRequest запрос на добавление заметки
type AddNoteRequest struct {
	UserID        uuid.UUID `json:"-"`
	TenantID      uuid.UUID `json:"-"`
	IntervieweeID uuid.UUID `json:"-"`
	Content       string    `json:"content"`
}

// Response модели

// IntervieweeResponse ответ с состоянием кандидата
type IntervieweeResponse struct {
	ID           uuid.UUID `json:"id"`
	TenantID     uuid.UUID `json:"tenantId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	CurrentRound int       `json:"currentRound"`
}

// NoteResponse ответ с заметкой
type NoteResponse struct {
	ID        uuid.UUID  `json:"id"`
	AuthorID  *uuid.UUID `json:"authorId,omitempty"`
	Content   string     `json:"content"`
	IsSystem  bool       `json:"isSystem"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NoteListResponse ответ со списком заметок
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// ChangeStatusResponse ответ на смену статуса
type ChangeStatusResponse struct {
	Interviewee    IntervieweeResponse `json:"interviewee"`
	PreviousStatus string              `json:"previousStatus"`
	Note           NoteResponse        `json:"note"`
}

// Методы конвертации

// FromDomainInterviewee конвертирует domain модель в DTO
func FromDomainInterviewee(i *domain.Interviewee) IntervieweeResponse {
	return IntervieweeResponse{
		ID:           i.ID,
		TenantID:     i.TenantID,
		Name:         i.Name,
		Email:        i.Email,
		Status:       string(i.Status),
		CurrentRound: i.CurrentRound,
	}
}

// FromDomainNote конвертирует domain модель в DTO
func FromDomainNote(n *domain.IntervieweeNote) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		AuthorID:  n.AuthorID,
		Content:   n.Content,
		IsSystem:  n.IsSystem,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNoteList конвертирует список domain моделей в DTO
func FromDomainNoteList(notes []*domain.IntervieweeNote) *NoteListResponse {
	resp := &NoteListResponse{
		Notes: make([]NoteResponse, 0, len(notes)),
	}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, FromDomainNote(n))
	}
	return resp
}
