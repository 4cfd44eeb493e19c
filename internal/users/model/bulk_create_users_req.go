package model

// BulkCreateUsersReq carries a direct batch payload. Per-record problems are
// not validated here: they become rejected/duplicate outcomes in the
// ingestion result. Only the envelope itself is checked.
type BulkCreateUsersReq struct {
	Users []CandidateRecord `json:"users" validate:"required,min=1,max=500"`
}

func (r *BulkCreateUsersReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
