package dto

import "time"

type OccupationItem struct {
	URI         string `json:"uri"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	ISCOCode    string `json:"isco_code,omitempty"`
}

type SkillItem struct {
	URI         string `json:"uri"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	SkillType   string `json:"skill_type"`
}

type GroupItem struct {
	URI   string `json:"uri"`
	Label string `json:"label"`
	Code  string `json:"code,omitempty"`
}

type SchemeItem struct {
	URI   string `json:"uri"`
	Label string `json:"label"`
}

type NoteItem struct {
	ID            string    `json:"id"`
	OccupationURI string    `json:"occupation_uri"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Total int        `json:"total"`
	Notes []NoteItem `json:"notes"`
}

type DiagnosticsResponse struct {
	Occupations    int64 `json:"occupations"`
	Skills         int64 `json:"skills"`
	Requirements   int64 `json:"requirements"`
	IndexSize      int   `json:"index_size"`
	IndexDimension int   `json:"index_dimension"`
	CacheAvailable bool  `json:"cache_available"`
}
