package contract

import "encoding/json"

const ClientPageSize = 20

// ClientRequest is the body of POST, PUT and PATCH on /api/clients.
//
// A nil field was not sent (or sent as null). For PATCH that means "keep the
// stored value"; for POST and PUT it means "empty".
type ClientRequest struct {
	FullName          *string      `json:"full_name" validate:"omitempty,max=500"`
	ShortName         *string      `json:"short_name" validate:"omitempty,max=255"`
	INN               *string      `json:"inn" validate:"omitempty,inn"`
	KPP               *string      `json:"kpp" validate:"omitempty,kpp"`
	OGRN              *string      `json:"ogrn" validate:"omitempty,ogrn"`
	Address           *string      `json:"address"`
	OKVED             *string      `json:"okved" validate:"omitempty,max=100"`
	RegDate           *string      `json:"reg_date" validate:"omitempty,datetime=2006-01-02"`
	AuthorizedCapital *json.Number `json:"authorized_capital" validate:"omitempty,decimal2"`
	Status            *string      `json:"status" validate:"omitempty,oneof=active liquidated reorganized"`
	DataSourceID      *int         `json:"data_source" validate:"omitempty,min=1"`
}

type ClientResponse struct {
	ID                int     `json:"id"`
	FullName          *string `json:"full_name"`
	ShortName         *string `json:"short_name"`
	INN               *string `json:"inn"`
	KPP               *string `json:"kpp"`
	OGRN              *string `json:"ogrn"`
	Address           *string `json:"address"`
	OKVED             *string `json:"okved"`
	RegDate           *string `json:"reg_date"`
	AuthorizedCapital *string `json:"authorized_capital"`
	Status            string  `json:"status"`
	DataSourceID      int     `json:"data_source"`
	DataSourceName    string  `json:"data_source_name"`
	LastCheckedAt     *string `json:"last_checked_at"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// ClientPageResponse is one page of the client listing. Next and Previous are
// page numbers, null at the edges.
type ClientPageResponse struct {
	Count    int64             `json:"count"`
	Next     *int              `json:"next"`
	Previous *int              `json:"previous"`
	Results  []*ClientResponse `json:"results"`
}
