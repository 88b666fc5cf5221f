package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/jroosing/fleetdns/internal/provider"
)

// Failure records one change that could not be applied.
type Failure struct {
	Op     string          `json:"op"` // "create", "update" or "delete"
	Record provider.Record `json:"record"`
	Error  string          `json:"error"`
}

// Result summarizes one apply run.
type Result struct {
	RunID    string    `json:"run_id"`
	Domain   string    `json:"domain"`
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Deleted  int       `json:"deleted"`
	Failures []Failure `json:"failures,omitempty"`
}

// OK reports whether every change applied cleanly.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Applier plans and applies declarations against one provider.
type Applier struct {
	provider provider.Provider
	logger   *slog.Logger
}

// NewApplier creates an Applier. A nil logger falls back to the default.
func NewApplier(p provider.Provider, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{provider: p, logger: logger}
}

// Plan computes the change set without touching the provider state. A
// missing zone is not an error: the plan then creates everything.
func (a *Applier) Plan(ctx context.Context, decl *declaration.Declaration) (Plan, error) {
	domain := decl.Zone.Domain

	actual, err := a.provider.Records(ctx, domain)
	if err != nil {
		if !errors.Is(err, provider.ErrZoneNotFound) {
			return Plan{}, fmt.Errorf("failed to list records for %s: %w", domain, err)
		}
		p := Diff(domain, Desired(decl), nil)
		p.CreateZone = true
		return p, nil
	}

	return Diff(domain, Desired(decl), actual), nil
}

// Apply converges the provider to the declaration. It ensures the zone
// exists, computes a fresh plan and executes it change by change.
// Individual record failures do not abort the run; they are collected
// in the result. Applying a converged declaration is a no-op.
func (a *Applier) Apply(ctx context.Context, decl *declaration.Declaration) (Result, error) {
	result := Result{
		RunID:  uuid.NewString(),
		Domain: decl.Zone.Domain,
	}

	_, err := a.provider.EnsureZone(ctx, provider.Zone{
		Name:   decl.Zone.Domain,
		Email:  decl.Zone.SOAEmail,
		Kind:   string(decl.Zone.Type),
		Labels: decl.Zone.Labels,
	})
	if err != nil {
		return result, fmt.Errorf("failed to ensure zone %s: %w", decl.Zone.Domain, err)
	}

	p, err := a.Plan(ctx, decl)
	if err != nil {
		return result, err
	}

	a.logger.Info("applying plan",
		"run_id", result.RunID,
		"domain", p.Domain,
		"create", len(p.Create),
		"update", len(p.Update),
		"delete", len(p.Delete),
	)

	for _, rec := range p.Create {
		if err := a.provider.CreateRecord(ctx, p.Domain, rec); err != nil {
			result.Failures = append(result.Failures, Failure{Op: "create", Record: rec, Error: err.Error()})
			continue
		}
		result.Created++
	}
	for _, rec := range p.Update {
		if err := a.provider.UpdateRecord(ctx, p.Domain, rec); err != nil {
			result.Failures = append(result.Failures, Failure{Op: "update", Record: rec, Error: err.Error()})
			continue
		}
		result.Updated++
	}
	for _, rec := range p.Delete {
		if err := a.provider.DeleteRecord(ctx, p.Domain, rec.ID); err != nil {
			result.Failures = append(result.Failures, Failure{Op: "delete", Record: rec, Error: err.Error()})
			continue
		}
		result.Deleted++
	}

	if !result.OK() {
		a.logger.Warn("apply finished with failures", "run_id", result.RunID, "failures", len(result.Failures))
	}
	return result, nil
}
