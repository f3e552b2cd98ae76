package store

import "time"

// State values of a SetRecord.
const (
	StateAccepted   = "accepted"
	StateSuperseded = "superseded"
)

// SetRecord is one scanned set in the 'base_sets' table.
type SetRecord struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Kind       string    `gorm:"column:kind;type:varchar(16);index"`
	Name       string    `gorm:"column:name;type:varchar(128)"`
	ShortName  string    `gorm:"column:short_name;type:varchar(8)"`
	Version    int       `gorm:"column:version;type:int"`
	TotalFiles int       `gorm:"column:total_files;type:int"`
	ValidFiles int       `gorm:"column:valid_files;type:int"`
	FoundFiles int       `gorm:"column:found_files;type:int"`
	State      string    `gorm:"column:state;type:varchar(16)"`
	Active     bool      `gorm:"column:active"`
	ScannedAt  time.Time `gorm:"column:scanned_at"`
}

// TableName overrides the table name.
func (SetRecord) TableName() string {
	return "base_sets"
}

// Selection is the persisted active set name of a kind.
type Selection struct {
	Kind      string    `gorm:"column:kind;type:varchar(16);primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(128)"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (Selection) TableName() string {
	return "base_set_selections"
}

// Models returns the models owned by the store, in migration order.
func Models() []any {
	return []any{SetRecord{}, Selection{}}
}
