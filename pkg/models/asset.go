package models

import "time"

// AssetJoinRow is one flat row of the inventory join issued by
// ListByCategory. Asset scalars repeat across rows whenever an asset has
// more than one history log or configuration entry. Nullable columns are
// pointers, both the left-joined ones and the optional asset columns
// (brand, model, purchase_date).
type AssetJoinRow struct {
	AssetID      int        `db:"asset_id"`
	SerialNumber string     `db:"serial_number"`
	Brand        *string    `db:"brand"`
	Model        *string    `db:"model"`
	PurchaseDate *time.Time `db:"purchase_date"`
	CategoryName string     `db:"name"`
	StatusType   string     `db:"status_type"`
	HistoryID    *int       `db:"history_id"`
	EventType    *string    `db:"event_type"`
	EventDate    *time.Time `db:"event_date"`
	Description  *string    `db:"description"`
	ConfigID     *int       `db:"config_id"`
	ConfigKey    *string    `db:"config_key"`
	ConfigValue  *string    `db:"config_value"`
	UserID       *int       `db:"user_id"`
	UserName     *string    `db:"user_name"`
	LocationName *string    `db:"location_name"`
	Desk         *string    `db:"desk"`
}

// Asset is the grouped inventory record served by the category listing.
// ConfigID carries the config_id of the first row seen for the asset and
// is kept for contract compatibility with the previous API.
type Asset struct {
	AssetID      int               `json:"asset_id"`
	SerialNumber string            `json:"serial_number"`
	Brand        *string           `json:"brand"`
	Model        *string           `json:"model"`
	PurchaseDate *time.Time        `json:"purchase_date"`
	Name         string            `json:"name"`
	StatusType   string            `json:"status_type"`
	ConfigID     *int              `json:"config_id"`
	User         *AssetUser        `json:"user"`
	HistoryLogs  []HistoryLogEntry `json:"history_logs"`
	OtherConfigs map[string]string `json:"other_configs"`
}

type AssetUser struct {
	UserID   int          `json:"user_id"`
	UserName string       `json:"user_name"`
	Location UserLocation `json:"location"`
}

type UserLocation struct {
	LocationName *string `json:"location_name"`
	Desk         *string `json:"desk"`
}

type HistoryLogEntry struct {
	HistoryID   int        `json:"history_id"`
	EventType   *string    `json:"event_type"`
	EventDate   *time.Time `json:"event_date"`
	Description *string    `json:"description"`
}

// HistoryLogRow is the flat scan target for the history-log-by-serial
// query. history_id is a pointer because the left join emits a NULL row
// for an asset without any log entries.
type HistoryLogRow struct {
	HistoryID   *int       `db:"history_id"`
	EventType   *string    `db:"event_type"`
	EventDate   *time.Time `db:"event_date"`
	Description *string    `db:"description"`
}

func (r *HistoryLogRow) TransformToEntry() HistoryLogEntry {
	return HistoryLogEntry{
		HistoryID:   *r.HistoryID,
		EventType:   r.EventType,
		EventDate:   r.EventDate,
		Description: r.Description,
	}
}

// AssetSummary is the shape returned by the user-name search. brand and
// model are nullable in storage and stay null in the JSON output.
type AssetSummary struct {
	AssetID      int     `json:"asset_id" db:"asset_id"`
	SerialNumber string  `json:"serial_number" db:"serial_number"`
	Brand        *string `json:"brand" db:"brand"`
	Model        *string `json:"model" db:"model"`
	CategoryName string  `json:"category_name" db:"category_name"`
}
