package main

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.RFQ{},
		&ds.ClusterRequest{},
		&ds.Quote{},
		&ds.QuoteItem{},
		&ds.Order{},
		&ds.Subscription{},
		&ds.HardwareProduct{},
		&ds.HardwareStat{},
		&ds.PricingPlan{},
		&ds.Partner{},
		&ds.GalleryImage{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	seedAdmin(db)
	seedCatalog(db)

	log.Println("Seed completed")
}

func hashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// seedAdmin создаёт администратора если его ещё нет.
// Пароль берётся из ADMIN_PASSWORD, по умолчанию admin123.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&ds.User{}).Where("login = ?", "admin").Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := ds.User{
		Login:    "admin",
		Password: hashString(password),
		IsAdmin:  true,
		FullName: "Администратор",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Println("Admin user created")
}

// seedCatalog наполняет витрину стартовыми данными
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&ds.HardwareProduct{}).Count(&count)
	if count > 0 {
		return
	}

	products := []ds.HardwareProduct{
		{
			Category:    "The Universal AI System",
			Name:        "NVIDIA DGX H100",
			Description: "The universal system for all AI workloads. DGX H100 is the foundational block of DGX SuperPODs, providing the power to train massive models at scale.",
			IsActive:    true,
			Position:    0,
			Stats: []ds.HardwareStat{
				{Value: "8x", Label: "NVIDIA H100 GPUs", Position: 0},
				{Value: "640 GB", Label: "Total GPU Memory", Position: 1},
				{Value: "32 PFLOPS", Label: "FP8 AI Performance", Position: 2},
				{Value: "2x", Label: "Intel Xeon Platinum CPUs", Position: 3},
				{Value: "4x", Label: "NVSwitch", Position: 4},
				{Value: "30TB", Label: "NVMe SSD", Position: 5},
			},
		},
		{
			Category:    "The Generative AI Engine",
			Name:        "NVIDIA H200 GPU",
			Description: "The H200 is the first GPU to offer HBM3e, delivering 141GB of memory at 4.8 terabytes per second to handle massive datasets for generative AI and HPC.",
			IsActive:    true,
			Position:    1,
			Stats: []ds.HardwareStat{
				{Value: "141 GB", Label: "HBM3e Memory", Position: 0},
				{Value: "4.8 TB/s", Label: "Memory Bandwidth", Position: 1},
				{Value: "97 TFLOPS", Label: "FP64 Performance", Position: 2},
				{Value: "4 PFLOPS", Label: "FP8 AI Performance", Position: 3},
				{Value: "Hopper", Label: "Architecture", Position: 4},
				{Value: "900 GB/s", Label: "NVLink C2C", Position: 5},
			},
		},
		{
			Category:    "The AI Workhorse",
			Name:        "NVIDIA H100 GPU",
			Description: "The NVIDIA H100 Tensor Core GPU delivers unprecedented performance, scalability, and security for every data center, accelerating workloads from enterprise AI to HPC.",
			IsActive:    true,
			Position:    2,
			Stats: []ds.HardwareStat{
				{Value: "80 GB", Label: "HBM3 Memory", Position: 0},
				{Value: "3.35 TB/s", Label: "Memory Bandwidth", Position: 1},
				{Value: "67 TFLOPS", Label: "FP64 Performance", Position: 2},
				{Value: "2 PFLOPS", Label: "FP8 AI Performance", Position: 3},
				{Value: "Hopper", Label: "Architecture", Position: 4},
				{Value: "PCIe Gen5", Label: "System Interface", Position: 5},
			},
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed hardware: %v", err)
		}
	}

	plans := []ds.PricingPlan{
		{
			Name:        "DGX Spark",
			Price:       "$4,000",
			Period:      "One-Time Setup",
			Description: "Perfect for startups and researchers to kickstart projects on a powerful, dedicated DGX instance.",
			Features: mustJSON([]string{
				"Dedicated DGX Instance",
				"100 Hours Compute Included",
				"2 TB NVMe Storage",
				"Pre-configured AI Stack",
				"Community & Docs Support",
			}),
			CTA:      "Request Access",
			Popular:  true,
			Position: 0,
		},
		{
			Name:        "GPU On-Demand",
			Price:       "Usage-Based",
			Description: "Flexible access to raw H100 and H200 GPU power. Pay only for what you use, billed per hour.",
			Features: mustJSON([]string{
				"Access to H100 & H200 GPUs",
				"Scale from 1 to 100s of GPUs",
				"Persistent Storage Options",
				"Ideal for Inference & Fine-tuning",
				"Priority Email Support",
			}),
			CTA:      "Get Started",
			Position: 1,
		},
		{
			Name:        "Enterprise & Resale",
			Price:       "Custom",
			Description: "For large-scale deployments, custom SuperPODs, and hardware resale partnerships.",
			Features: mustJSON([]string{
				"Dedicated DGX SuperPODs",
				"Hardware Procurement & Resale",
				"Custom Networking & Security",
				"24/7 Dedicated Support SLA",
				"Managed Services by Hanzo.AI",
			}),
			CTA:      "Contact Sales",
			Position: 2,
		},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			log.Fatalf("Failed to seed pricing: %v", err)
		}
	}

	partners := []ds.Partner{
		{Name: "Hanzo.AI", SiteURL: "https://hanzo.ai", Position: 0},
		{Name: "NVIDIA Inception Program", SiteURL: "https://www.nvidia.com/en-us/startups/", Position: 1},
		{Name: "Techstars", SiteURL: "https://www.techstars.com", Position: 2},
	}
	for i := range partners {
		if err := db.Create(&partners[i]).Error; err != nil {
			log.Fatalf("Failed to seed partners: %v", err)
		}
	}

	log.Println("Catalog seeded")
}

func mustJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Failed to marshal seed JSON: %v", err)
	}
	return data
}
