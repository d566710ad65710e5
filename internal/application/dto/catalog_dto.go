package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo en respuestas.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductListResponse envoltura para GET /api/products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Address               string `json:"address"`
	CompanyRegistrationNo string `json:"company_registration_no"`
}

// ClientListResponse envoltura para GET /api/clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}
