package entity

import "strings"

// DaDataSourceName is the data source name that turns on registry enrichment.
const DaDataSourceName = "dadata"

// DataSource is the origin of a client's data, like "manual" or "DaData".
type DataSource struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
}

// IsDaData reports whether clients bound to this source should be enriched
// from the DaData registry. The match is on the name only, ignoring case.
func (d *DataSource) IsDaData() bool {
	return d != nil && strings.EqualFold(d.Name, DaDataSourceName)
}
