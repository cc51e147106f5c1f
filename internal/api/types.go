package api

import (
	"time"

	"github.com/samcharles93/ptfview/internal/contour"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

type ErrorBody struct {
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
	Param   string `json:"param,omitempty"`
}

type OpenFamilyRequest struct {
	Path string `json:"path"`
}

type FamilyResp struct {
	ID       string    `json:"id"`
	Object   string    `json:"object"`
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"opened_at"`
	ptf.Summary
}

type FamilyList struct {
	Object    string       `json:"object"`
	Data      []FamilyResp `json:"data"`
	Available []string     `json:"available,omitempty"`
}

type DeleteFamilyResp struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

type StateList struct {
	Object  string                `json:"object"`
	Data    []ptf.StateDescriptor `json:"data"`
	HasMore bool                  `json:"has_more"`
}

type StateResp struct {
	Object string `json:"object"`
	ptf.StateDescriptor
	Coords []float32 `json:"coords"`
}

type DisplacementResp struct {
	Object    string                      `json:"object"`
	Sequence  int                         `json:"sequence"`
	Time      float32                     `json:"time"`
	Component string                      `json:"component"`
	Values    []float32                   `json:"values"`
	Max       float32                     `json:"max"`
	Levels    [contour.LevelCount]float32 `json:"levels"`
}

type PartResp struct {
	Object       string      `json:"object"`
	Index        int         `json:"index"`
	Type         string      `json:"type,omitempty"`
	ElementCount int         `json:"element_count"`
	Colour       contour.RGB `json:"colour"`
	Elements     []int       `json:"elements,omitempty"`
}

type PartList struct {
	Object string     `json:"object"`
	Data   []PartResp `json:"data"`
}

type MeshResp struct {
	Object   string           `json:"object"`
	Part     int              `json:"part"`
	Sequence int              `json:"sequence,omitempty"`
	Contour  string           `json:"contour,omitempty"`
	Vertices []contour.Vertex `json:"vertices"`
}

type BoundsResp struct {
	Object   string     `json:"object"`
	Sequence int        `json:"sequence,omitempty"`
	Min      [3]float32 `json:"min"`
	Max      [3]float32 `json:"max"`
	Centre   [3]float32 `json:"centre"`
	Diagonal float32    `json:"diagonal"`
}
