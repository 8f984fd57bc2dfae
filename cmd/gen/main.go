package main

import (
	"greenloop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.EcoProfileModel{},
		model.UserDeviceModel{},
		model.AnnouncementModel{},
		model.CollectionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
