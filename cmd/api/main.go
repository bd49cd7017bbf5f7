package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/serviteca-pro/internal/application/catalog"
	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/inventory"
	"github.com/tu-usuario/serviteca-pro/internal/application/returns"
	"github.com/tu-usuario/serviteca-pro/internal/application/sales"
	"github.com/tu-usuario/serviteca-pro/internal/infrastructure/memory"
	httpRouter "github.com/tu-usuario/serviteca-pro/internal/interfaces/http"
	"github.com/tu-usuario/serviteca-pro/pkg/config"
	"github.com/tu-usuario/serviteca-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado en memoria: vive solo durante el proceso.
	tireRepo := memory.NewTireRepository()
	customerRepo := memory.NewCustomerRepository()
	advisorRepo := memory.NewAdvisorRepository()
	inventoryRepo := memory.NewInventoryRepository()
	saleRepo := memory.NewSaleRepository()
	returnRepo := memory.NewReturnRepository()
	txRunner := memory.NewTxRunner()

	catalogUC := catalog.NewCatalogUseCase(txRunner, tireRepo, customerRepo, advisorRepo)
	inventoryUC := inventory.NewInventoryUseCase(txRunner, tireRepo, inventoryRepo)
	salesUC := sales.NewSalesUseCase(txRunner, tireRepo, customerRepo, advisorRepo, inventoryRepo, saleRepo)
	returnsUC := returns.NewReturnsUseCase(txRunner, tireRepo, inventoryRepo, saleRepo, returnRepo)

	if cfg.App.SeedDemo {
		if err := seedDemo(context.Background(), catalogUC, inventoryUC); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		ReturnsUC:   returnsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedDemo carga una semilla mínima para probar la API sin registrar datos:
// una llanta con stock, un cliente y un asesor.
func seedDemo(ctx context.Context, catalogUC *catalog.CatalogUseCase, inventoryUC *inventory.InventoryUseCase) error {
	tire, err := catalogUC.RegisterTire(ctx, dto.RegisterTireRequest{
		SKU:   "L-205-55R16",
		Brand: "X",
		Model: "Sport",
		Size:  "205/55 R16",
		Price: "120",
	})
	if err != nil {
		return err
	}
	threshold := int64(5)
	if _, err := inventoryUC.Adjust(ctx, dto.AdjustInventoryRequest{
		TireID:    tire.ID,
		Delta:     15,
		Threshold: &threshold,
	}); err != nil {
		return err
	}
	if _, err := catalogUC.RegisterCustomer(ctx, dto.RegisterCustomerRequest{
		Name:     "María López",
		Document: "12345678",
	}); err != nil {
		return err
	}
	_, err = catalogUC.RegisterAdvisor(ctx, dto.RegisterAdvisorRequest{
		Name:     "Carlos Pérez",
		Document: "87654321",
	})
	return err
}
