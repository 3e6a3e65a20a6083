package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"example.com/supplement-store/internal/config"
	domproduct "example.com/supplement-store/internal/domain/product"
	"example.com/supplement-store/internal/infra/persistence/mongodb"
	cataloguc "example.com/supplement-store/internal/usecase/catalog"
)

var sampleProducts = []domproduct.Product{
	{
		Name:          "Combo Whey 1kg + Creatina 300gr XXL",
		Description:   "Combo perfecto para maximizar tu rendimiento. Incluye proteína de suero de alta calidad con sabor a chocolate y creatina micronizada para mayor absorción. Ideal para post-entrenamiento y aumento de masa muscular.",
		Price:         36720,
		OriginalPrice: ptr(45800),
		Type:          "Proteína",
		Brand:         "Star Nutrition",
		ImageURL:      "https://images.pexels.com/photos/4162451/pexels-photo-4162451.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:         15,
		Rating:        4.8,
	},
	{
		Name:          "Combo Iron Bar Gentech 2 Unidades X 20u",
		Description:   "Barras energéticas de alta calidad con proteínas y carbohidratos complejos. Perfectas para antes o después del entrenamiento. Sabor chocolate con trozos de almendras.",
		Price:         57800,
		OriginalPrice: ptr(68000),
		Type:          "Creatina",
		Brand:         "ENA",
		ImageURL:      "https://images.pexels.com/photos/4047186/pexels-photo-4047186.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:         23,
		Rating:        4.7,
	},
	{
		Name:        "Scoop Suplementación La Plata Varios Colores X 1u",
		Description: "Cuchara medidora profesional para suplementos. Fabricada en material resistente y libre de BPA. Medida estándar de 30ml. Disponible en varios colores.",
		Price:       1500,
		Type:        "Pre-entreno",
		Brand:       "Universal Nutrition",
		ImageURL:    "https://images.pexels.com/photos/4162485/pexels-photo-4162485.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:       8,
		Rating:      4.9,
	},
	{
		Name:          "Combo Whey Protein True Made Ena 2 Unidades X 2.05 Lbs",
		Description:   "Proteína de suero premium con aminoácidos esenciales. Fórmula de rápida absorción ideal para recuperación muscular. Sabor vainilla natural sin azúcares añadidos.",
		Price:         68220,
		OriginalPrice: ptr(75800),
		Type:          "Vitaminas",
		Brand:         "Optimum Nutrition",
		ImageURL:      "https://images.pexels.com/photos/4047172/pexels-photo-4047172.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:         30,
		Rating:        4.5,
	},
	{
		Name:        "Quemador de Grasa Termogénico",
		Description: "Potente quemador con extractos naturales para acelerar el metabolismo.",
		Price:       78990,
		Type:        "Quemadores de Grasa",
		Brand:       "BSN",
		ImageURL:    "https://images.pexels.com/photos/4162493/pexels-photo-4162493.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:       12,
		Rating:      4.6,
	},
	{
		Name:        "BCAA 2:1:1 Instantáneo",
		Description: "Aminoácidos ramificados para recuperación muscular durante el entrenamiento.",
		Price:       54990,
		Type:        "Aminoácidos",
		Brand:       "MuscleTech",
		ImageURL:    "https://images.pexels.com/photos/4162458/pexels-photo-4162458.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:       18,
		Rating:      4.4,
	},
	{
		Name:        "Post-Workout Recovery",
		Description: "Fórmula de recuperación con glutamina, creatina y carbohidratos.",
		Price:       61990,
		Type:        "Post-entreno",
		Brand:       "Dymatize",
		ImageURL:    "https://images.pexels.com/photos/4162472/pexels-photo-4162472.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:       9,
		Rating:      4.7,
	},
	{
		Name:        "Whey Isolate Vainilla",
		Description: "Proteína aislada de suero con mínimo contenido de lactosa y grasas.",
		Price:       109990,
		Type:        "Proteína",
		Brand:       "Star Nutrition",
		ImageURL:    "https://images.pexels.com/photos/4162451/pexels-photo-4162451.jpeg?auto=compress&cs=tinysrgb&w=800",
		Stock:       7,
		Rating:      4.9,
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer db.Client().Disconnect(context.Background())

	repo := mongodb.NewProductRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("product indexes", zap.Error(err))
	}

	existing, err := repo.CountAll(ctx)
	if err != nil {
		logger.Fatal("count products", zap.Error(err))
	}
	if existing > 0 {
		logger.Info("products already exist, skipping seed", zap.Int64("count", existing))
		return
	}

	svc := cataloguc.NewService(repo)
	for i := range sampleProducts {
		p := sampleProducts[i]
		p.IsActive = true
		if _, err := svc.Create(ctx, &p); err != nil {
			logger.Fatal("seed product", zap.String("name", p.Name), zap.Error(err))
		}
	}
	logger.Info("products seeded", zap.Int("count", len(sampleProducts)))
}

func ptr(v float64) *float64 { return &v }
