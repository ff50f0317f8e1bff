package dto

import (
	"time"

	"tisubmit/internal/domain"
)

// IndicatorResponse is the tiIndicator resource echoed back by the Graph
// Security API on a successful submission, i.e. the submitted attributes
// plus the server-assigned ones.
type IndicatorResponse struct {
	domain.ThreatIndicator

	ODataContext     string     `json:"@odata.context,omitempty"`
	ID               string     `json:"id,omitempty"`
	AzureTenantID    string     `json:"azureTenantId,omitempty"`
	IngestedDateTime *time.Time `json:"ingestedDateTime,omitempty"`
}
