package company

import (
	"time"
)

// Company is an audited entity. Imports address companies by Name, which is
// unique.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	CreatedAt time.Time `json:"created_at"`
}
