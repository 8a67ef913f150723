package entity

// CompanyRecord is the registry's view of a company, already mapped into our
// client vocabulary. Empty strings mean the registry had nothing for the field.
type CompanyRecord struct {
	FullName          string
	ShortName         string
	INN               string
	KPP               string
	OGRN              string
	Address           string
	OKVED             string
	RegDate           string // YYYY-MM-DD
	AuthorizedCapital string // two fractional digits
	Status            ClientStatus
}
