package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-layout-engine/internal/schemas"
	"github.com/jonathan/cv-layout-engine/internal/service"
	"github.com/jonathan/cv-layout-engine/internal/types"
	"github.com/jonathan/cv-layout-engine/internal/validation"
)

// LayoutPayload is the wire form of a layout request. The content document
// stays raw until it passes JSON Schema validation; json.Unmarshal alone
// would silently drop unknown keys.
type LayoutPayload struct {
	Content         json.RawMessage        `json:"content"`
	TargetFormat    string                 `json:"target_format,omitempty"`
	LayoutType      string                 `json:"layout_type,omitempty"`
	ExperienceLevel string                 `json:"experience_level,omitempty"`
	Industry        string                 `json:"industry,omitempty"`
	Constraints     *types.PageConstraints `json:"constraints,omitempty"`
}

// BatchRequest represents the request body for /layout/batch.
type BatchRequest struct {
	Items []LayoutPayload `json:"items"`
}

// BatchResponse returns one result per batch item, in input order.
type BatchResponse struct {
	Results []*types.LayoutResult `json:"results"`
}

// maxBatchSize caps the number of items accepted in one batch request.
const maxBatchSize = 50

// handleLayout computes a layout for a single content document
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var payload LayoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := s.toRequest(payload)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.generate(req)
	log.Printf("layout %s: type=%s pages=%d score=%d", requestID, req.LayoutType, result.TotalPages, result.LayoutScore)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleLayoutBatch computes layouts for several content documents
// concurrently. Each generate call is independent, so the items fan out
// across goroutines; results keep the input order.
func (s *Server) handleLayoutBatch(w http.ResponseWriter, r *http.Request) {
	var batch BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(batch.Items) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "items must not be empty")
		return
	}
	if len(batch.Items) > maxBatchSize {
		s.errorResponse(w, http.StatusBadRequest, "too many items in batch request")
		return
	}

	requests := make([]*types.LayoutRequest, len(batch.Items))
	for i, item := range batch.Items {
		req, err := s.toRequest(item)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		requests[i] = req
	}

	results := make([]*types.LayoutResult, len(requests))
	var g errgroup.Group
	for i := range requests {
		i := i
		g.Go(func() error {
			results[i] = s.generate(requests[i])
			return nil
		})
	}
	// The engine never fails; the group only synchronizes completion.
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, BatchResponse{Results: results})
}

// toRequest validates a payload and converts it to a typed layout request:
// the raw content document against the JSON Schema, then the assembled
// request struct (content presence, page geometry).
func (s *Server) toRequest(payload LayoutPayload) (*types.LayoutRequest, error) {
	req := &types.LayoutRequest{
		TargetFormat:    payload.TargetFormat,
		LayoutType:      payload.LayoutType,
		ExperienceLevel: payload.ExperienceLevel,
		Industry:        payload.Industry,
		Constraints:     payload.Constraints,
	}

	if len(payload.Content) > 0 && string(payload.Content) != "null" {
		if s.schemaPath != "" {
			if err := schemas.ValidateContentDocument(s.schemaPath, payload.Content); err != nil {
				return nil, err
			}
		}

		var content types.CVContent
		if err := json.Unmarshal(payload.Content, &content); err != nil {
			return nil, &validation.Error{Message: "invalid content document", Cause: err}
		}
		req.Content = &content
	}

	if err := validation.ValidateRequest(req); err != nil {
		return nil, err
	}

	return req, nil
}

// generate runs the layout service for a validated request, honoring an
// explicit layout type or page constraints when the request carries them.
func (s *Server) generate(req *types.LayoutRequest) *types.LayoutResult {
	if req.LayoutType != "" || req.Constraints != nil {
		layoutType := types.ParseLayoutType(req.LayoutType)
		if req.LayoutType == "" {
			layoutType = service.ChooseLayoutType(req.Content, req.ExperienceLevel, req.Industry)
		}

		constraints := service.ConstraintsForFormat(req.TargetFormat)
		if req.Constraints != nil {
			constraints = *req.Constraints
		}

		return s.service.GenerateWithLayout(req.Content, layoutType, constraints)
	}
	return s.service.Generate(req.Content, req.TargetFormat, req.ExperienceLevel, req.Industry)
}
