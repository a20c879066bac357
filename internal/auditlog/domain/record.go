package domain

import (
	"encoding/json"
	"time"
)

// Record is one relay outcome. It is serialized to JSON, encrypted and written as a
// single log line. Records are never modified after they are written.
type Record struct {
	Type      RecordType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Channel   string     `json:"channel,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Service   string     `json:"service,omitempty"`
	Message   string     `json:"message,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Submitter holds the contact form fields copied into a record.
type Submitter struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// NewRecord creates a record of recordType on the email channel, stamped with now in UTC.
func NewRecord(recordType RecordType, now time.Time, requestID string, submitter *Submitter) *Record {
	record := &Record{
		Type:      recordType,
		Timestamp: now.UTC(),
		Channel:   ChannelEmail,
		RequestID: requestID,
	}
	if submitter != nil {
		record.Name = submitter.Name
		record.Email = submitter.Email
		record.Phone = submitter.Phone
		record.Service = submitter.Service
		record.Message = submitter.Message
	}
	return record
}

// Entry is the result of reading one log line. Exactly one of Record or Failure
// is set; Raw holds the decrypted text when it was not a valid record.
type Entry struct {
	Record  *Record
	Failure string
	Raw     string
}

// MarshalJSON renders the record itself, or a placeholder for unreadable lines:
// {"type":"error","error":"decrypt_failed"} or {"type":"raw","data":"..."}.
func (e Entry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Record != nil:
		return json.Marshal(e.Record)
	case e.Failure == FailureParse:
		return json.Marshal(struct {
			Type string `json:"type"`
			Data string `json:"data"`
		}{Type: "raw", Data: e.Raw})
	default:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Error string `json:"error"`
		}{Type: string(TypeError), Error: FailureDecrypt})
	}
}
