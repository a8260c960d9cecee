// Package transport defines the admin API request and response shapes.
package transport

import (
	"time"

	"advanx_funnel_backend/internal/admin/repository"
	adminservice "advanx_funnel_backend/internal/admin/service"
	"advanx_funnel_backend/internal/tracking"

	"github.com/google/uuid"
)

// LoginRequest carries the admin credential.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// LeadResponse is one lead row in the dashboard listing.
type LeadResponse struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"`
	WhatsApp            string    `json:"whatsapp"`
	Instagram           string    `json:"instagram,omitempty"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	StateCode           string    `json:"stateCode"`
	BusinessDescription string    `json:"businessDescription,omitempty"`
	Revenue             string    `json:"revenue"`
	RevenueLabel        string    `json:"revenueLabel"`
	CreatedAt           string    `json:"createdAt"`
}

// LeadListResponse wraps the filtered lead listing.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}

// FromLeads maps repository leads to the listing response.
func FromLeads(leads []repository.Lead) LeadListResponse {
	items := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, LeadResponse{
			ID:                  l.ID,
			FullName:            l.FullName,
			Email:               l.Email,
			WhatsApp:            l.WhatsApp,
			Instagram:           l.Instagram,
			City:                l.City,
			State:               l.State,
			StateCode:           l.StateCode,
			BusinessDescription: l.BusinessDescription,
			Revenue:             l.Revenue,
			RevenueLabel:        adminservice.RevenueLabel(l.Revenue),
			CreatedAt:           l.CreatedAt.Format(time.RFC3339),
		})
	}
	return LeadListResponse{Items: items, Total: len(items)}
}

// PixelConfigPayload is one pixel entry in the save request. Entries
// without an ID are treated as new.
type PixelConfigPayload struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Platform string     `json:"platform" validate:"required"`
	PixelID  string     `json:"pixelId"`
	Active   bool       `json:"active"`
}

// SavePixelsRequest replaces the pixel configuration set wholesale.
type SavePixelsRequest struct {
	Pixels []PixelConfigPayload `json:"pixels" validate:"dive"`
}

// ToConfigs maps the payload to tracking configs.
func (r SavePixelsRequest) ToConfigs() []tracking.PixelConfig {
	configs := make([]tracking.PixelConfig, 0, len(r.Pixels))
	for _, p := range r.Pixels {
		cfg := tracking.PixelConfig{
			Platform: tracking.Platform(p.Platform),
			PixelID:  p.PixelID,
			Active:   p.Active,
		}
		if p.ID != nil {
			cfg.ID = *p.ID
		}
		configs = append(configs, cfg)
	}
	return configs
}

// PixelListResponse wraps the persisted pixel set.
type PixelListResponse struct {
	Pixels []tracking.PixelConfig `json:"pixels"`
}
