package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bhavik1112000/ams-backend/pkg/models"
)

func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestGroupRowsCollapsesDuplicateHistoryEntries(t *testing.T) {
	rows := []models.AssetJoinRow{
		{
			AssetID:      1,
			SerialNumber: "SN-001",
			HistoryID:    intPtr(10),
			EventType:    strPtr("repair"),
			ConfigKey:    strPtr("cpu"),
			ConfigValue:  strPtr("i7"),
		},
		{
			AssetID:      1,
			SerialNumber: "SN-001",
			HistoryID:    intPtr(10),
			EventType:    strPtr("repair"),
			ConfigKey:    strPtr("ram"),
			ConfigValue:  strPtr("16GB"),
		},
		{
			AssetID:      1,
			SerialNumber: "SN-001",
			HistoryID:    intPtr(11),
			EventType:    strPtr("upgrade"),
		},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	assert.Equal(t, 1, assets[0].AssetID)
	assert.Len(t, assets[0].HistoryLogs, 2)
	assert.Equal(t, 10, assets[0].HistoryLogs[0].HistoryID)
	assert.Equal(t, 11, assets[0].HistoryLogs[1].HistoryID)
	assert.Equal(t, map[string]string{"cpu": "i7", "ram": "16GB"}, assets[0].OtherConfigs)
	assert.Nil(t, assets[0].User)
}

func TestGroupRowsOneObjectPerAssetInFirstSeenOrder(t *testing.T) {
	rows := []models.AssetJoinRow{
		{AssetID: 7, SerialNumber: "SN-007", HistoryID: intPtr(1)},
		{AssetID: 3, SerialNumber: "SN-003"},
		{AssetID: 7, SerialNumber: "SN-007", HistoryID: intPtr(2)},
		{AssetID: 5, SerialNumber: "SN-005"},
		{AssetID: 3, SerialNumber: "SN-003", HistoryID: intPtr(9)},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 3)
	assert.Equal(t, 7, assets[0].AssetID)
	assert.Equal(t, 3, assets[1].AssetID)
	assert.Equal(t, 5, assets[2].AssetID)
	assert.Len(t, assets[0].HistoryLogs, 2)
	assert.Len(t, assets[1].HistoryLogs, 1)
	assert.Empty(t, assets[2].HistoryLogs)
}

func TestGroupRowsLastConfigValueWins(t *testing.T) {
	rows := []models.AssetJoinRow{
		{AssetID: 1, ConfigKey: strPtr("os"), ConfigValue: strPtr("win10")},
		{AssetID: 1, ConfigKey: strPtr("os"), ConfigValue: strPtr("win11")},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	assert.Equal(t, map[string]string{"os": "win11"}, assets[0].OtherConfigs)
}

func TestGroupRowsUserSnapshotFromFirstRow(t *testing.T) {
	desk := strPtr("D-12")
	rows := []models.AssetJoinRow{
		{
			AssetID:      2,
			UserID:       intPtr(40),
			UserName:     strPtr("Jane Smith"),
			LocationName: strPtr("HQ"),
			Desk:         desk,
		},
		{
			AssetID:  2,
			UserID:   intPtr(41),
			UserName: strPtr("Someone Else"),
		},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	if assert.NotNil(t, assets[0].User) {
		assert.Equal(t, 40, assets[0].User.UserID)
		assert.Equal(t, "Jane Smith", assets[0].User.UserName)
		assert.Equal(t, strPtr("HQ"), assets[0].User.Location.LocationName)
		assert.Equal(t, desk, assets[0].User.Location.Desk)
	}
}

func TestGroupRowsUnownedAssetHasNullUser(t *testing.T) {
	rows := []models.AssetJoinRow{
		{AssetID: 9},
		{AssetID: 9, UserID: intPtr(5), UserName: strPtr("Late Owner")},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	assert.Nil(t, assets[0].User)
}

func TestGroupRowsKeepsScalarFieldsAndFirstConfigID(t *testing.T) {
	purchased := timePtr(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC))
	rows := []models.AssetJoinRow{
		{
			AssetID:      4,
			SerialNumber: "SN-004",
			Brand:        strPtr("Lenovo"),
			Model:        strPtr("T14"),
			PurchaseDate: purchased,
			CategoryName: "Laptop",
			StatusType:   "active",
			ConfigID:     intPtr(100),
			ConfigKey:    strPtr("cpu"),
			ConfigValue:  strPtr("i5"),
		},
		{
			AssetID:     4,
			ConfigID:    intPtr(101),
			ConfigKey:   strPtr("ram"),
			ConfigValue: strPtr("8GB"),
		},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	assert.Equal(t, "SN-004", assets[0].SerialNumber)
	assert.Equal(t, strPtr("Lenovo"), assets[0].Brand)
	assert.Equal(t, strPtr("T14"), assets[0].Model)
	assert.Equal(t, purchased, assets[0].PurchaseDate)
	assert.Equal(t, "Laptop", assets[0].Name)
	assert.Equal(t, "active", assets[0].StatusType)
	assert.Equal(t, intPtr(100), assets[0].ConfigID)
}

func TestGroupRowsNullOptionalAssetColumns(t *testing.T) {
	rows := []models.AssetJoinRow{
		{
			AssetID:      8,
			SerialNumber: "SN-008",
			Brand:        nil,
			Model:        nil,
			PurchaseDate: nil,
			CategoryName: "Laptop",
			StatusType:   "active",
			HistoryID:    intPtr(30),
		},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	assert.Nil(t, assets[0].Brand)
	assert.Nil(t, assets[0].Model)
	assert.Nil(t, assets[0].PurchaseDate)
	assert.Equal(t, "SN-008", assets[0].SerialNumber)
	assert.Len(t, assets[0].HistoryLogs, 1)
}

func TestGroupRowsEmptyInput(t *testing.T) {
	assets := GroupRows(nil)

	assert.NotNil(t, assets)
	assert.Empty(t, assets)
}

func TestGroupRowsNullEventFieldsPreserved(t *testing.T) {
	eventDate := timePtr(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	rows := []models.AssetJoinRow{
		{
			AssetID:     6,
			HistoryID:   intPtr(20),
			EventType:   strPtr("assigned"),
			EventDate:   eventDate,
			Description: nil,
		},
	}

	assets := GroupRows(rows)

	assert.Len(t, assets, 1)
	entry := assets[0].HistoryLogs[0]
	assert.Equal(t, 20, entry.HistoryID)
	assert.Equal(t, strPtr("assigned"), entry.EventType)
	assert.Equal(t, eventDate, entry.EventDate)
	assert.Nil(t, entry.Description)
}
