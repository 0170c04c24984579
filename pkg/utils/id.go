package utils

import (
	"github.com/google/uuid"
)

// NewStudyID returns a unique identifier for one study execution. The
// ID appears in logs and in every report artifact so that outputs from
// repeated studies can be told apart.
func NewStudyID() string {
	return uuid.NewString()
}
