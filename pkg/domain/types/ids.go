package types

import "github.com/google/uuid"

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

func (x RecordID) String() string {
	return string(x)
}
