// Package domain holds DTOs for organisations http and service contracts
package domain

// Organisation is the organisation detail payload
type Organisation struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ReferenceNumber string   `json:"reference_number"`
	Nations         []string `json:"nations"`
}

// SearchResult is one page of organisation matches, passed through from downstream
type SearchResult struct {
	Items       []Organisation `json:"items"`
	CurrentPage int            `json:"current_page"`
	PageSize    int            `json:"page_size"`
	TotalItems  int            `json:"total_items"`
}
