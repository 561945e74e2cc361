package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type NoteUpsertRequest struct {
	OccupationURI string `json:"occupation_uri"`
	NoteID        string `json:"note_id"`
	Body          string `json:"body"`
}

func (r NoteUpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OccupationURI,
			validation.Required.Error("occupation URI is required"),
			validation.Length(1, 2048),
		),
		validation.Field(&r.NoteID, is.UUID),
		validation.Field(&r.Body,
			validation.Required.Error("note body is required"),
			validation.Length(1, 10000),
		),
	)
}
