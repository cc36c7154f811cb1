package ledger

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

// ErrInvalidInput is returned when a mutation request is rejected before reaching the log.
var ErrInvalidInput = errors.New("invalid ledger input")

// Input is a mutation request. Which fields are read depends on Type.
type Input struct {
	Type        model.TransactionType
	RecordID    string
	PatientName string
	Condition   string
}

// AddRecordInput builds an ADD_RECORD request.
func AddRecordInput(recordID, patientName, condition string) Input {
	return Input{Type: model.AddRecord, RecordID: recordID, PatientName: patientName, Condition: condition}
}

// VerifyRecordInput builds a VERIFY_INTEGRITY request.
func VerifyRecordInput(recordID string) Input {
	return Input{Type: model.VerifyIntegrity, RecordID: recordID}
}

// DecryptRecordInput builds a DECRYPT_RECORD request.
func DecryptRecordInput(recordID string) Input {
	return Input{Type: model.DecryptRecord, RecordID: recordID}
}

// SyntheticInput builds a generator request; the ledger picks the record id.
func SyntheticInput(t model.TransactionType) Input {
	return Input{Type: t}
}

// Validate checks that every field required by the input type is present.
func (in Input) Validate() error {
	switch in.Type {
	case model.AddRecord:
		if in.RecordID == "" {
			return fmt.Errorf("%w: recordId is required", ErrInvalidInput)
		}
		if in.PatientName == "" {
			return fmt.Errorf("%w: patientName is required", ErrInvalidInput)
		}
		if in.Condition == "" {
			return fmt.Errorf("%w: condition is required", ErrInvalidInput)
		}
	case model.VerifyIntegrity, model.DecryptRecord:
		if in.RecordID == "" {
			return fmt.Errorf("%w: recordId is required", ErrInvalidInput)
		}
	case model.QueryRecord, model.AuditAccess, model.ConsentVerify:
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, in.Type)
	}
	return nil
}
