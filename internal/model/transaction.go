package model

import "time"

type TransactionType string
type TransactionStatus string

var (
	AddRecord       TransactionType = "ADD_RECORD"
	VerifyIntegrity TransactionType = "VERIFY_INTEGRITY"
	DecryptRecord   TransactionType = "DECRYPT_RECORD"
	QueryRecord     TransactionType = "QUERY_RECORD"
	AuditAccess     TransactionType = "AUDIT_ACCESS"
	ConsentVerify   TransactionType = "CONSENT_VERIFY"
)

var (
	StatusSuccess  TransactionStatus = "SUCCESS"
	StatusValid    TransactionStatus = "VALID"
	StatusTampered TransactionStatus = "TAMPERED"
)

// SyntheticTypes lists the transaction types produced by the activity generator.
var SyntheticTypes = []TransactionType{QueryRecord, AuditAccess, ConsentVerify}

// IsSynthetic reports whether t is one of the generator-only types.
func (t TransactionType) IsSynthetic() bool {
	for _, s := range SyntheticTypes {
		if s == t {
			return true
		}
	}
	return false
}

// IsKnown reports whether t is any transaction type the ledger accepts.
func (t TransactionType) IsKnown() bool {
	switch t {
	case AddRecord, VerifyIntegrity, DecryptRecord:
		return true
	}
	return t.IsSynthetic()
}

// Transaction is one ledger activity record. It is never modified after creation.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	RecordID    string            `json:"recordId"`
	PatientName string            `json:"patientName,omitempty"`
	Condition   string            `json:"condition,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Status      TransactionStatus `json:"status"`
	Encrypted   bool              `json:"encrypted,omitempty"`
	Hash        string            `json:"hash,omitempty"`
	Details     string            `json:"details,omitempty"`
	Automated   bool              `json:"automated,omitempty"`
}
