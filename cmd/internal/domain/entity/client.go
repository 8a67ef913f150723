package entity

import "strings"

type ClientStatus string

const (
	ClientStatusActive      ClientStatus = "active"
	ClientStatusLiquidated  ClientStatus = "liquidated"
	ClientStatusReorganized ClientStatus = "reorganized"
)

// Client is a legal entity tracked by the registry.
//
// Every optional column is a pointer so that "never set" and "explicitly
// cleared" survive a round trip through the database as NULL.
type Client struct {
	ID                int          `gorm:"primaryKey"`
	FullName          *string      `gorm:"size:500"`
	ShortName         *string      `gorm:"size:255"`
	INN               *string      `gorm:"size:12;index"`
	KPP               *string      `gorm:"size:9"`
	OGRN              *string      `gorm:"size:15"`
	Address           *string      `gorm:"type:text"`
	OKVED             *string      `gorm:"size:100"`
	RegDate           *string      `gorm:"size:10"` // YYYY-MM-DD
	AuthorizedCapital *string      `gorm:"size:24"`
	Status            ClientStatus `gorm:"size:20;not null;default:active;index"`
	DataSourceID      int          `gorm:"not null;index"`
	LastCheckedAt     *int64
	CreatedAt         int64 `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	DataSource *DataSource `gorm:"foreignKey:DataSourceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusLiquidated, ClientStatusReorganized:
		return true
	}
	return false
}

// DisplayName renders the client the way operators expect to see it in logs.
func (c *Client) DisplayName() string {
	name := "Без имени"
	if c.FullName != nil && *c.FullName != "" {
		name = *c.FullName
	} else if c.ShortName != nil && *c.ShortName != "" {
		name = *c.ShortName
	}

	inn := "Без ИНН"
	if c.INN != nil && strings.TrimSpace(*c.INN) != "" {
		inn = *c.INN
	}
	return name + " (ИНН: " + inn + ")"
}
