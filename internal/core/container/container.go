package container

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/bhavik1112000/ams-backend/internal/inventory/assets"
	"github.com/bhavik1112000/ams-backend/internal/repository"
)

type Container struct {
	Repository       *repository.Repository
	InventoryHandler *assets.InventoryHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	inventoryRepo := assets.NewRepository(repo)
	inventoryHandler := assets.NewInventoryHandler(inventoryRepo, log)

	return &Container{
		Repository:       repo,
		InventoryHandler: inventoryHandler,
	}
}
