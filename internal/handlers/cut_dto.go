package handlers

import (
	"github.com/gorilla/schema"

	"github.com/JCaesar45/Cut-a-rectangle/internal/rectcut"
)

type DimensionsDTO struct {
	Rows int `schema:"rows,required"`
	Cols int `schema:"cols,required"`
}

func ParseDimensionsDTO(src map[string][]string) (DimensionsDTO, error) {
	var dto DimensionsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type RecordsFilterDTO struct {
	Rows  *int `schema:"rows"`
	Cols  *int `schema:"cols"`
	Limit int  `schema:"limit"`
}

func ParseRecordsFilterDTO(src map[string][]string) (RecordsFilterDTO, error) {
	var dto RecordsFilterDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	if dto.Limit <= 0 || dto.Limit > 100 {
		dto.Limit = 20
	}
	return dto, err
}

type CountDTO struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Count int `json:"count"`
}

type SolutionsDTO struct {
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Count     int       `json:"count"`
	Solutions [][]uint8 `json:"solutions"`
}

func NewSolutionsDTO(rows, cols int, solutions []rectcut.Partition) SolutionsDTO {
	dto := SolutionsDTO{
		Rows:      rows,
		Cols:      cols,
		Count:     len(solutions),
		Solutions: make([][]uint8, len(solutions)),
	}
	for i, p := range solutions {
		dto.Solutions[i] = p.Labels()
	}
	return dto
}

// Frames sent over the solutions WebSocket: one "solution" frame per
// partition, then a single "summary" frame.
type SolutionFrameDTO struct {
	Type   string  `json:"type"`
	Labels []uint8 `json:"labels,omitempty"`
	Count  *int    `json:"count,omitempty"`
}
