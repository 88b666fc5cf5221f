package models

import (
	"github.com/jroosing/fleetdns/internal/plan"
	"github.com/jroosing/fleetdns/internal/provider"
)

// PlanRecord is one record inside a plan response.
type PlanRecord struct {
	ID    string `json:"id,omitempty"`
	Host  string `json:"host"`
	Type  string `json:"type"`
	Value string `json:"value"`
	TTL   int    `json:"ttl"`
}

// PlanResponse describes the change set an apply would execute.
type PlanResponse struct {
	Domain     string       `json:"domain"`
	CreateZone bool         `json:"create_zone"`
	Create     []PlanRecord `json:"create"`
	Update     []PlanRecord `json:"update"`
	Delete     []PlanRecord `json:"delete"`
	Summary    string       `json:"summary"`
	Converged  bool         `json:"converged"`
}

// ApplyResponse reports the outcome of one apply run.
type ApplyResponse struct {
	RunID    string         `json:"run_id"`
	Domain   string         `json:"domain"`
	Status   string         `json:"status"`
	Created  int            `json:"created"`
	Updated  int            `json:"updated"`
	Deleted  int            `json:"deleted"`
	Failures []plan.Failure `json:"failures,omitempty"`
}

// NewPlanResponse converts a computed plan to its API shape.
func NewPlanResponse(p plan.Plan) PlanResponse {
	return PlanResponse{
		Domain:     p.Domain,
		CreateZone: p.CreateZone,
		Create:     planRecords(p.Create),
		Update:     planRecords(p.Update),
		Delete:     planRecords(p.Delete),
		Summary:    p.Summary(),
		Converged:  p.Empty(),
	}
}

func planRecords(records []provider.Record) []PlanRecord {
	out := make([]PlanRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, PlanRecord{
			ID:    rec.ID,
			Host:  rec.Host,
			Type:  rec.Type,
			Value: rec.Value,
			TTL:   rec.TTL,
		})
	}
	return out
}
