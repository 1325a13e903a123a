package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentModels "github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdatePhoneRequest запрос на смену телефона
type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	TotalSpent float64    `json:"totalSpent"`
	LastVisit  *time.Time `json:"lastVisit,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ClientStatsResponse посещаемость и траты клиента
type ClientStatsResponse struct {
	ClientID       uuid.UUID                               `json:"clientId"`
	CompletedCount int                                     `json:"completedCount"`
	NoShowCount    int                                     `json:"noShowCount"`
	SpentMonth     float64                                 `json:"spentMonth"`
	SpentYear      float64                                 `json:"spentYear"`
	History        []appointmentModels.AppointmentResponse `json:"history"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		TotalSpent: c.TotalSpent,
		LastVisit:  c.LastVisit,
		DeletedAt:  c.DeletedAt,
		CreatedAt:  c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{Clients: make([]ClientResponse, 0, len(clients))}
	for _, c := range clients {
		if clientResp := FromDomainClient(c); clientResp != nil {
			resp.Clients = append(resp.Clients, *clientResp)
		}
	}
	return resp
}

// FromDomainClientStats конвертирует статистику клиента в DTO
func FromDomainClientStats(clientID uuid.UUID, stats domain.ClientStats, loc *time.Location, now time.Time) *ClientStatsResponse {
	return &ClientStatsResponse{
		ClientID:       clientID,
		CompletedCount: stats.CompletedCount,
		NoShowCount:    stats.NoShowCount,
		SpentMonth:     stats.SpentMonth,
		SpentYear:      stats.SpentYear,
		History:        appointmentModels.FromDomainAppointmentList(stats.History, loc, now),
	}
}
