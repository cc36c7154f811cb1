package model

// Stats aggregates the network summary pushed to dashboard observers.
type Stats struct {
	TotalRecords      uint64 `json:"totalRecords"`
	EncryptedRecords  uint64 `json:"encryptedRecords"`
	VerifiedRecords   uint64 `json:"verifiedRecords"`
	ActiveNodes       uint32 `json:"activeNodes"`
	TotalTransactions uint64 `json:"totalTransactions"`
	NetworkHealth     string `json:"networkHealth"`
}
