package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record number prefixes.
const (
	CaseNumberPrefix     = "CS"
	IncidentNumberPrefix = "INC"
)

// NewRecordNumber returns a human-facing number such as CS-2026-3FA91C.
func NewRecordNumber(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), strings.ToUpper(suffix))
}
