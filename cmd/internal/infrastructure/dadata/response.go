package dadata

import (
	"fmt"
	"time"

	"clientsapi/cmd/internal/domain/entity"
)

type findPartyRequest struct {
	Query string `json:"query"`
}

type findPartyResponse struct {
	Suggestions []*suggestionResponse `json:"suggestions"`
}

type suggestionResponse struct {
	Value string         `json:"value"`
	Data  *partyResponse `json:"data"`
}

type partyResponse struct {
	INN           string           `json:"inn"`
	KPP           string           `json:"kpp"`
	OGRN          string           `json:"ogrn"`
	Name          *nameResponse    `json:"name"`
	Address       *addressResponse `json:"address"`
	OKVED         string           `json:"okved"`
	OKVEDDetailed []*okvedResponse `json:"okved_detailed"`
	State         *stateResponse   `json:"state"`
	Capital       *capitalResponse `json:"capital"`
}

type nameResponse struct {
	FullWithOPF  *string `json:"full_with_opf"`
	ShortWithOPF *string `json:"short_with_opf"`
	Full         string  `json:"full"`
	Short        string  `json:"short"`
}

type addressResponse struct {
	UnrestrictedValue string `json:"unrestricted_value"`
}

type okvedResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type stateResponse struct {
	Status           string `json:"status"`
	RegistrationDate *int64 `json:"registration_date"`
}

type capitalResponse struct {
	Value *float64 `json:"value"`
}

// ToCompanyRecord maps a registry party into our vocabulary. It reports false
// only when there is no party at all; missing sub-objects map to empty fields.
func ToCompanyRecord(p *partyResponse) (*entity.CompanyRecord, bool) {
	if p == nil {
		return nil, false
	}

	record := &entity.CompanyRecord{
		INN:    p.INN,
		KPP:    p.KPP,
		OGRN:   p.OGRN,
		Status: translateStatus(p.State),
	}

	if p.Name != nil {
		record.FullName = preferred(p.Name.FullWithOPF, p.Name.Full)
		record.ShortName = preferred(p.Name.ShortWithOPF, p.Name.Short)
	}

	if p.Address != nil {
		record.Address = p.Address.UnrestrictedValue
	}

	record.OKVED = p.OKVED
	if record.OKVED == "" && len(p.OKVEDDetailed) > 0 && p.OKVEDDetailed[0] != nil {
		record.OKVED = p.OKVEDDetailed[0].Code
	}

	if p.State != nil && p.State.RegistrationDate != nil && *p.State.RegistrationDate != 0 {
		record.RegDate = RegistrationDate(*p.State.RegistrationDate)
	}

	if p.Capital != nil && p.Capital.Value != nil && *p.Capital.Value != 0 {
		record.AuthorizedCapital = fmt.Sprintf("%.2f", *p.Capital.Value)
	}
	return record, true
}

// RegistrationDate turns the registry's epoch millis into a UTC calendar date.
func RegistrationDate(millis int64) string {
	return time.Unix(millis/1000, 0).
		UTC().
		Format(time.DateOnly)
}

// preferred returns the legal-form variant when the registry sent the key at
// all, and the bare name otherwise.
func preferred(withOPF *string, bare string) string {
	if withOPF != nil {
		return *withOPF
	}
	return bare
}

func translateStatus(state *stateResponse) entity.ClientStatus {
	if state == nil {
		return entity.ClientStatusActive
	}

	switch state.Status {
	case "LIQUIDATED":
		return entity.ClientStatusLiquidated
	case "LIQUIDATING":
		return entity.ClientStatusReorganized
	default:
		return entity.ClientStatusActive
	}
}
