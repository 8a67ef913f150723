package dadata

import (
	"encoding/json"
	"testing"

	"clientsapi/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sberbankParty = `{
	"inn": "770708389312",
	"kpp": "770401001",
	"ogrn": "1027700132195",
	"name": {
		"full_with_opf": "ПУБЛИЧНОЕ АКЦИОНЕРНОЕ ОБЩЕСТВО \"СБЕРБАНК\"",
		"short_with_opf": "ПАО СБЕРБАНК",
		"full": "СБЕРБАНК",
		"short": "СБЕРБАНК"
	},
	"address": {"unrestricted_value": "г Москва, ул Вавилова, д 19"},
	"okved": "64.19",
	"okved_detailed": [{"code": "64.19.1", "name": "Денежное посредничество"}],
	"state": {"status": "ACTIVE", "registration_date": 1041278400000, "liquidation_date": null},
	"capital": {"value": 6776084694.0}
}`

func decodeParty(t *testing.T, raw string) *partyResponse {
	t.Helper()
	var p partyResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func TestToCompanyRecordFullParty(t *testing.T) {
	record, ok := ToCompanyRecord(decodeParty(t, sberbankParty))
	require.True(t, ok)

	assert.Equal(t, &entity.CompanyRecord{
		FullName:          "ПУБЛИЧНОЕ АКЦИОНЕРНОЕ ОБЩЕСТВО \"СБЕРБАНК\"",
		ShortName:         "ПАО СБЕРБАНК",
		INN:               "770708389312",
		KPP:               "770401001",
		OGRN:              "1027700132195",
		Address:           "г Москва, ул Вавилова, д 19",
		OKVED:             "64.19",
		RegDate:           "2002-12-30",
		AuthorizedCapital: "6776084694.00",
		Status:            entity.ClientStatusActive,
	}, record)
}

func TestToCompanyRecordFallbacks(t *testing.T) {
	raw := `{
		"inn": "123456789012",
		"name": {"full": "ТЕСТ", "short": "Т"},
		"okved_detailed": [{"code": "62.01"}, {"code": "62.02"}],
		"state": {"status": "LIQUIDATING"}
	}`
	record, ok := ToCompanyRecord(decodeParty(t, raw))
	require.True(t, ok)

	assert.Equal(t, "ТЕСТ", record.FullName)
	assert.Equal(t, "Т", record.ShortName)
	assert.Equal(t, "62.01", record.OKVED)
	assert.Equal(t, entity.ClientStatusReorganized, record.Status)
	assert.Empty(t, record.RegDate)
	assert.Empty(t, record.AuthorizedCapital)
	assert.Empty(t, record.Address)
}

func TestToCompanyRecordMissingSubObjects(t *testing.T) {
	record, ok := ToCompanyRecord(decodeParty(t, `{"inn": "7707083893", "capital": null, "state": null}`))
	require.True(t, ok)

	assert.Equal(t, "7707083893", record.INN)
	assert.Empty(t, record.FullName)
	assert.Empty(t, record.ShortName)
	assert.Empty(t, record.OKVED)
	assert.Equal(t, entity.ClientStatusActive, record.Status)
}

func TestToCompanyRecordNilParty(t *testing.T) {
	record, ok := ToCompanyRecord(nil)
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestTranslateStatus(t *testing.T) {
	assert.Equal(t, entity.ClientStatusLiquidated, translateStatus(&stateResponse{Status: "LIQUIDATED"}))
	assert.Equal(t, entity.ClientStatusReorganized, translateStatus(&stateResponse{Status: "LIQUIDATING"}))
	assert.Equal(t, entity.ClientStatusActive, translateStatus(&stateResponse{Status: "ACTIVE"}))
	assert.Equal(t, entity.ClientStatusActive, translateStatus(&stateResponse{Status: "BANKRUPT"}))
	assert.Equal(t, entity.ClientStatusActive, translateStatus(nil))
}

func TestRegistrationDate(t *testing.T) {
	assert.Equal(t, "2002-12-30", RegistrationDate(1041278400000))
	assert.Equal(t, "2000-01-01", RegistrationDate(946684800000))
	assert.Equal(t, "1970-01-01", RegistrationDate(999))
}
