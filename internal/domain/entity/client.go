package entity

// Client representa un cliente facturable (datos semilla, solo lectura).
type Client struct {
	ID                    string
	Name                  string
	Address               string
	CompanyRegistrationNo string
}
