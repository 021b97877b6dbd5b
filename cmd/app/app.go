package main

import (
	"os"

	"github.com/DRSN-tech/products-api/internal/app"
	config "github.com/DRSN-tech/products-api/internal/cfg"
	"github.com/DRSN-tech/products-api/pkg/logger"
)

//	@title			Products API
//	@version		1.0
//	@description	Каталог товаров с семантическим поиском по векторам
//	@BasePath		/api/v1

func main() {
	log := logger.NewZapLogger()
	defer log.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
