// Package main заполняет каталог продуктов тестовыми данными.
package main

import (
	"context"
	"math/rand/v2"
	"os"
	"strings"

	"go.uber.org/zap"

	"goproductos/internal/adapters/postgres"
	"goproductos/internal/config"
	"goproductos/internal/db"
	"goproductos/internal/domain/entities"
	"goproductos/pkg/logger"
)

// Константы для сообщений.
const (
	ErrInitLogger = "failed to initialize logger"
	ErrLoadConfig = "failed to load configuration"
	ErrInitDB     = "failed to initialize database"
	ErrSeed       = "failed to seed producto"

	LogSeedStarted  = "seeding productos catalog"
	LogSeedFinished = "productos catalog seeded"
)

// Границы случайной цены.
const (
	minPrecio = 20
	maxPrecio = 500
)

var nombres = []string{
	"Laptop Lenovo", "Mouse Logitech", "Teclado Redragon", "Monitor Samsung",
	"Impresora HP", "Smartphone Xiaomi", "Tablet Huawei", "Auriculares JBL",
	"Cámara Canon", "Disco SSD Kingston", "Memoria RAM Corsair", "Silla gamer",
	"Router TP-Link", "Power Bank Anker", "Webcam Logitech", "Altavoz Bluetooth",
	"Tarjeta gráfica NVIDIA", "Microprocesador AMD Ryzen", "Micrófono Blue Yeti", "Cargador USB-C Baseus",
}

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv("PRODUCTOS_LOGGER_MODE")) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv("PRODUCTOS_LOGGER_LEVEL"))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}
	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		os.Exit(1)
	}

	database, err := db.New(ctx, &cfg.Postgres)
	if err != nil {
		log.Error(ctx, ErrInitDB, zap.Error(err))
		os.Exit(1)
	}
	defer database.Close(ctx)

	productoRepo := postgres.NewProductoRepository(database.Pool())

	log.Info(ctx, LogSeedStarted, zap.Int("count", len(nombres)))

	for _, nombre := range nombres {
		precio := float64(rand.IntN(maxPrecio-minPrecio+1) + minPrecio)
		descripcion := "Producto de alta calidad: " + nombre

		if _, err := productoRepo.Create(ctx, entities.ProductoInput{
			Nombre:      nombre,
			Precio:      &precio,
			Descripcion: &descripcion,
		}); err != nil {
			log.Error(ctx, ErrSeed, zap.Error(err), zap.String("nombre", nombre))
			os.Exit(1)
		}
	}

	log.Info(ctx, LogSeedFinished)
}
