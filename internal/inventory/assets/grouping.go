package assets

import "github.com/bhavik1112000/ams-backend/pkg/models"

// GroupRows folds the flat ListByCategory result into one nested object
// per asset. The fold does not assume rows of the same asset are adjacent;
// output order is the order in which each asset_id was first seen.
//
// The user object is snapshotted from the first row seen for an asset and
// never merged from later rows. Duplicate history ids produced by the
// cross join with configuration rows collapse to one entry; repeated
// config keys resolve last-write-wins.
func GroupRows(rows []models.AssetJoinRow) []models.Asset {
	grouped := make(map[int]*models.Asset)
	order := make([]int, 0, len(rows))

	for _, row := range rows {
		asset, ok := grouped[row.AssetID]
		if !ok {
			asset = &models.Asset{
				AssetID:      row.AssetID,
				SerialNumber: row.SerialNumber,
				Brand:        row.Brand,
				Model:        row.Model,
				PurchaseDate: row.PurchaseDate,
				Name:         row.CategoryName,
				StatusType:   row.StatusType,
				ConfigID:     row.ConfigID,
				User:         assetUserFromRow(row),
				HistoryLogs:  []models.HistoryLogEntry{},
				OtherConfigs: map[string]string{},
			}
			grouped[row.AssetID] = asset
			order = append(order, row.AssetID)
		}

		if row.HistoryID != nil && !hasHistoryEntry(asset.HistoryLogs, *row.HistoryID) {
			asset.HistoryLogs = append(asset.HistoryLogs, models.HistoryLogEntry{
				HistoryID:   *row.HistoryID,
				EventType:   row.EventType,
				EventDate:   row.EventDate,
				Description: row.Description,
			})
		}

		if row.ConfigKey != nil {
			value := ""
			if row.ConfigValue != nil {
				value = *row.ConfigValue
			}
			asset.OtherConfigs[*row.ConfigKey] = value
		}
	}

	assets := make([]models.Asset, 0, len(order))
	for _, assetID := range order {
		assets = append(assets, *grouped[assetID])
	}

	return assets
}

func assetUserFromRow(row models.AssetJoinRow) *models.AssetUser {
	if row.UserID == nil {
		return nil
	}

	userName := ""
	if row.UserName != nil {
		userName = *row.UserName
	}

	return &models.AssetUser{
		UserID:   *row.UserID,
		UserName: userName,
		Location: models.UserLocation{
			LocationName: row.LocationName,
			Desk:         row.Desk,
		},
	}
}

func hasHistoryEntry(entries []models.HistoryLogEntry, historyID int) bool {
	for _, entry := range entries {
		if entry.HistoryID == historyID {
			return true
		}
	}
	return false
}
