package server

import (
	"strings"

	"github.com/huynhanx03/waitlist/pkg/datastructs/waitlist"
)

// NameRequest is the body of every mutating endpoint.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// Normalize trims surrounding whitespace so blank names fail validation.
func (r *NameRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type AddedResponse struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

type RemovalResponse struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// SnapshotResponse always carries Empty so clients can tell an empty
// waitlist apart from a missing payload.
type SnapshotResponse struct {
	Empty bool     `json:"empty"`
	Names []string `json:"names"`
	Text  string   `json:"text"`
}

func toAddedResponse(a waitlist.Added) AddedResponse {
	return AddedResponse{Name: a.Name, Position: a.Position.String(), Message: a.String()}
}

func toRemovalResponse(r waitlist.Removal) RemovalResponse {
	return RemovalResponse{Name: r.Name, Outcome: r.Outcome.String(), Message: r.String()}
}

func toSnapshotResponse(s waitlist.Snapshot) SnapshotResponse {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	return SnapshotResponse{Empty: s.Empty(), Names: names, Text: s.String()}
}
