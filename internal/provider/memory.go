package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

func init() {
	Register("memory", func(_ *slog.Logger, _ map[string]string) (Provider, error) {
		return NewMemory(), nil
	})
}

// Memory is an in-process provider used by tests and dry runs. It
// mimics remote behavior (IDs, not-found errors) without any I/O.
type Memory struct {
	mu     sync.Mutex
	zones  map[string]*memoryZone
	nextID int
}

type memoryZone struct {
	zone    Zone
	records map[string]Record
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{zones: make(map[string]*memoryZone)}
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) EnsureZone(_ context.Context, zone Zone) (Zone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.zones[zone.Name]; ok {
		existing.zone.Email = zone.Email
		existing.zone.Kind = zone.Kind
		existing.zone.Labels = zone.Labels
		return existing.zone, nil
	}

	m.nextID++
	zone.ID = fmt.Sprintf("zone-%d", m.nextID)
	m.zones[zone.Name] = &memoryZone{zone: zone, records: make(map[string]Record)}
	return zone, nil
}

func (m *Memory) GetZone(_ context.Context, domain string) (Zone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.zones[domain]
	if !ok {
		return Zone{}, fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	return z.zone, nil
}

func (m *Memory) DeleteZone(_ context.Context, domain string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.zones[domain]; !ok {
		return fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	delete(m.zones, domain)
	return nil
}

func (m *Memory) Records(_ context.Context, domain string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.zones[domain]
	if !ok {
		return nil, fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	records := make([]Record, 0, len(z.records))
	for _, rec := range z.records {
		records = append(records, rec)
	}
	return records, nil
}

func (m *Memory) CreateRecord(_ context.Context, domain string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.zones[domain]
	if !ok {
		return fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	m.nextID++
	rec.ID = fmt.Sprintf("rec-%d", m.nextID)
	z.records[rec.ID] = rec
	return nil
}

func (m *Memory) UpdateRecord(_ context.Context, domain string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.zones[domain]
	if !ok {
		return fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	if _, ok := z.records[rec.ID]; !ok {
		return fmt.Errorf("%s: %w", rec.ID, ErrRecordNotFound)
	}
	z.records[rec.ID] = rec
	return nil
}

func (m *Memory) DeleteRecord(_ context.Context, domain string, recordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.zones[domain]
	if !ok {
		return fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	if _, ok := z.records[recordID]; !ok {
		return fmt.Errorf("%s: %w", recordID, ErrRecordNotFound)
	}
	delete(z.records, recordID)
	return nil
}
