package assets

import (
	"github.com/doug-martin/goqu/v9"

	"github.com/bhavik1112000/ams-backend/internal/repository"
	custom_error "github.com/bhavik1112000/ams-backend/pkg/errors"
	"github.com/bhavik1112000/ams-backend/pkg/models"
)

const inventorySchema = "asset_inventory"

type InventoryRepository interface {
	ListByCategory(category string) ([]models.AssetJoinRow, error)
	HistoryLogByAssetSerial(serialNumber string) ([]models.HistoryLogEntry, error)
	SearchByUserName(user string) ([]models.AssetSummary, error)
}

type inventoryRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) InventoryRepository {
	return &inventoryRepositoryImpl{repository: r}
}

// ListByCategory returns the flat join of assets with their category,
// status, configurations, history logs and owning user for one category.
// Rows repeat asset scalars across log/config combinations; GroupRows
// folds them back together.
func (r *inventoryRepositoryImpl) ListByCategory(category string) ([]models.AssetJoinRow, error) {
	query := r.repository.GoquDBWrapper.
		Select(
			goqu.I("a.asset_id"),
			goqu.I("a.serial_number"),
			goqu.I("a.brand"),
			goqu.I("a.model"),
			goqu.I("a.purchase_date"),
			goqu.I("c.name"),
			goqu.I("s.status_type"),
			goqu.I("hl.history_id"),
			goqu.I("hl.event_type"),
			goqu.I("hl.event_date"),
			goqu.I("hl.description"),
			goqu.I("oc.config_id"),
			goqu.I("oc.config_key"),
			goqu.I("oc.config_value"),
			goqu.I("u.user_id"),
			goqu.I("u.name").As("user_name"),
			goqu.I("l.location_name"),
			goqu.I("l.desk"),
		).
		From(goqu.T("assets").Schema(inventorySchema).As("a")).
		InnerJoin(
			goqu.T("categories").Schema(inventorySchema).As("c"),
			goqu.On(goqu.Ex{"a.category": goqu.I("c.id")}),
		).
		InnerJoin(
			goqu.T("status_types").Schema(inventorySchema).As("s"),
			goqu.On(goqu.Ex{"a.status": goqu.I("s.status_id")}),
		).
		LeftJoin(
			goqu.T("other_configurations").Schema(inventorySchema).As("oc"),
			goqu.On(goqu.Ex{"a.asset_id": goqu.I("oc.asset_id")}),
		).
		LeftJoin(
			goqu.T("history_logs").Schema(inventorySchema).As("hl"),
			goqu.On(goqu.Ex{"a.asset_id": goqu.I("hl.asset_id")}),
		).
		LeftJoin(
			goqu.T("user_assets").Schema(inventorySchema).As("ua"),
			goqu.On(goqu.Ex{"a.asset_id": goqu.I("ua.asset_id")}),
		).
		LeftJoin(
			goqu.T("users").Schema(inventorySchema).As("u"),
			goqu.On(goqu.Ex{"ua.user_id": goqu.I("u.user_id")}),
		).
		LeftJoin(
			goqu.T("location").Schema(inventorySchema).As("l"),
			goqu.On(goqu.Ex{"u.location": goqu.I("l.location_id")}),
		).
		Where(goqu.Ex{"c.name": category}).
		Prepared(true)

	var rows []models.AssetJoinRow
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.WrapQueryError("select asset inventory by category", err)
	}

	return rows, nil
}

// HistoryLogByAssetSerial returns the log entries of the asset with the
// given serial number. The left join emits one all-NULL row for an asset
// without entries; those rows are dropped so a log-less asset yields an
// empty slice.
func (r *inventoryRepositoryImpl) HistoryLogByAssetSerial(serialNumber string) ([]models.HistoryLogEntry, error) {
	query := r.repository.GoquDBWrapper.
		Select(
			goqu.I("hl.history_id"),
			goqu.I("hl.event_type"),
			goqu.I("hl.event_date"),
			goqu.I("hl.description"),
		).
		From(goqu.T("assets").Schema(inventorySchema).As("a")).
		LeftJoin(
			goqu.T("history_logs").Schema(inventorySchema).As("hl"),
			goqu.On(goqu.Ex{"a.asset_id": goqu.I("hl.asset_id")}),
		).
		Where(goqu.Ex{"a.serial_number": serialNumber}).
		Prepared(true)

	var rows []models.HistoryLogRow
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, custom_error.WrapQueryError("select history log by serial number", err)
	}

	entries := []models.HistoryLogEntry{}
	for _, row := range rows {
		if row.HistoryID == nil {
			continue
		}
		entries = append(entries, row.TransformToEntry())
	}

	return entries, nil
}

// SearchByUserName returns asset summaries whose owning user's name
// contains the given substring, case-insensitively. The wildcards travel
// inside the bound parameter, never the SQL text.
func (r *inventoryRepositoryImpl) SearchByUserName(user string) ([]models.AssetSummary, error) {
	query := r.repository.GoquDBWrapper.
		Select(
			goqu.I("a.asset_id"),
			goqu.I("a.serial_number"),
			goqu.I("a.brand"),
			goqu.I("a.model"),
			goqu.I("c.name").As("category_name"),
		).
		From(goqu.T("assets").Schema(inventorySchema).As("a")).
		InnerJoin(
			goqu.T("categories").Schema(inventorySchema).As("c"),
			goqu.On(goqu.Ex{"a.category": goqu.I("c.id")}),
		).
		LeftJoin(
			goqu.T("user_assets").Schema(inventorySchema).As("ua"),
			goqu.On(goqu.Ex{"a.asset_id": goqu.I("ua.asset_id")}),
		).
		LeftJoin(
			goqu.T("users").Schema(inventorySchema).As("u"),
			goqu.On(goqu.Ex{"ua.user_id": goqu.I("u.user_id")}),
		).
		Where(goqu.I("u.name").ILike("%" + user + "%")).
		Prepared(true)

	summaries := []models.AssetSummary{}
	if err := query.Executor().ScanStructs(&summaries); err != nil {
		return nil, custom_error.WrapQueryError("search assets by user name", err)
	}

	return summaries, nil
}
