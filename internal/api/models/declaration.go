package models

import "github.com/jroosing/fleetdns/internal/declaration"

// DeclarationResponse wraps the stored declaration with its version.
type DeclarationResponse struct {
	Version     int64                   `json:"version"`
	Declaration declaration.Declaration `json:"declaration"`
}

// DeclarationUpdateResponse is returned after a successful PUT.
type DeclarationUpdateResponse struct {
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// RecordListResponse contains the derived record set of a declaration.
type RecordListResponse struct {
	Domain  string               `json:"domain"`
	Records []declaration.Record `json:"records"`
	Count   int                  `json:"count"`
}
