package model

import "time"

// PatientRecord is a seed health record served read-only by the dashboard.
type PatientRecord struct {
	RecordID    string    `json:"recordId"`
	PatientID   string    `json:"patientId,omitempty"`
	PatientName string    `json:"patientName,omitempty"`
	Condition   string    `json:"condition,omitempty"`
	DoctorID    string    `json:"doctorId,omitempty"`
	Hospital    string    `json:"hospital,omitempty"`
	Hash        string    `json:"hash,omitempty"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
