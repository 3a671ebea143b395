package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"marinahub/internal/config"
	"marinahub/internal/database"
	"marinahub/internal/domain"
)

// Seeds the demo store with the fixture the validation harness expects:
// 3 marinas, 25 owners, 30 boats, 60 berths, 20 contracts, 15 bookings,
// 40 invoices, 35 payments and 12 work orders.
func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	if *configFile != "" {
		config.SetConfigFile(*configFile)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("loading config: ", err)
	}

	rng := rand.New(rand.NewSource(42)) // stable fixture across runs

	db, err := database.Connect(cfg.DemoDSN)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	// Wipe in FK-safe order.
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"payments", "invoices", "work_orders", "bookings", "contracts",
		"boats", "berths", "owners", "users", "marinas", "marina_groups",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating marina group and marinas...")
	group := domain.MarinaGroup{Name: "Nordkyst Marinas", Code: "NORDKYST"}
	db.Create(&group)

	marinaNames := []struct {
		name, code, city string
	}{
		{"Solvik Marina", "SOLVIK", "Bergen"},
		{"Havbris Marina", "HAVBRIS", "Stavanger"},
		{"Fyrtoppen Marina", "FYRTOPP", "Trondheim"},
	}
	marinas := make([]domain.Marina, 0, len(marinaNames))
	for _, m := range marinaNames {
		marina := domain.Marina{
			GroupID:  &group.ID,
			Name:     m.name,
			Code:     m.code,
			City:     m.city,
			IsActive: true,
			IsOnline: true,
		}
		db.Create(&marina)
		marinas = append(marinas, marina)
	}

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@marinahub.no",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Group Admin",
		IsActive:     true,
	}
	db.Create(&admin)

	for i, m := range marinas {
		hash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
		manager := domain.User{
			Email:        fmt.Sprintf("manager%d@marinahub.no", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleManager,
			Name:         fmt.Sprintf("%s Manager", m.Name),
			MarinaID:     &m.ID,
			IsActive:     true,
		}
		db.Create(&manager)
	}
	log.Println("Admin created: admin@marinahub.no / admin123")

	log.Println("Creating owners...")
	firstNames := []string{"Astrid", "Bjorn", "Camilla", "Dag", "Elin", "Finn", "Greta", "Henrik", "Ingrid", "Jonas"}
	lastNames := []string{"Berg", "Dahl", "Eriksen", "Foss", "Gundersen", "Haugen", "Iversen", "Johansen", "Krogh", "Lund"}
	owners := make([]domain.Owner, 0, 25)
	for i := 0; i < 25; i++ {
		owner := domain.Owner{
			MarinaID:  marinas[i%len(marinas)].ID,
			FirstName: firstNames[i%len(firstNames)],
			LastName:  lastNames[(i/len(firstNames))%len(lastNames)],
			Email:     fmt.Sprintf("owner%02d@example.com", i+1),
			Phone:     fmt.Sprintf("+47 912 34 %03d", 100+i),
			IsActive:  true,
		}
		db.Create(&owner)
		owners = append(owners, owner)
	}

	log.Println("Creating berths...")
	berths := make([]domain.Berth, 0, 60)
	for i := 0; i < 60; i++ {
		marina := marinas[i%len(marinas)]
		berth := domain.Berth{
			MarinaID:    marina.ID,
			BerthNumber: fmt.Sprintf("%s-%02d", string(marina.Code[0]), i/len(marinas)+1),
			Length:      8 + float64(rng.Intn(10)),
			Beam:        2.5 + float64(rng.Intn(3)),
			IsAvailable: true,
			IsActive:    true,
		}
		db.Create(&berth)
		berths = append(berths, berth)
	}

	log.Println("Creating boats...")
	boatNames := []string{"Havfrue", "Nordlys", "Stormfugl", "Bris", "Drage", "Fjord", "Maake", "Selje", "Vind", "Boelge"}
	boats := make([]domain.Boat, 0, 30)
	for i := 0; i < 30; i++ {
		owner := owners[i%len(owners)]
		boat := domain.Boat{
			OwnerID:      owner.ID,
			MarinaID:     owner.MarinaID,
			Name:         fmt.Sprintf("%s %d", boatNames[i%len(boatNames)], i/len(boatNames)+1),
			Registration: fmt.Sprintf("NOR-%04d", 1000+i),
			Length:       6 + float64(rng.Intn(8)),
			Beam:         2 + float64(rng.Intn(2)),
			Draft:        0.8 + float64(rng.Intn(2)),
			IsActive:     true,
		}
		db.Create(&boat)
		boats = append(boats, boat)
	}

	log.Println("Creating contracts...")
	now := time.Now().UTC()
	contracts := make([]domain.Contract, 0, 20)
	for i := 0; i < 20; i++ {
		boat := boats[i]
		berth := berths[i]
		start := now.AddDate(0, -rng.Intn(12)-1, 0)
		end := start.AddDate(1, 0, 0)
		rate := 350.0 + float64(rng.Intn(40))*10

		status := domain.ContractActive
		if i >= 15 {
			status = domain.ContractExpired
			end = now.AddDate(0, -1, 0)
		}

		contract := domain.Contract{
			MarinaID:    boat.MarinaID,
			OwnerID:     boat.OwnerID,
			BoatID:      boat.ID,
			BerthID:     berth.ID,
			Status:      status,
			StartDate:   start,
			EndDate:     &end,
			MonthlyRate: &rate,
		}
		db.Create(&contract)
		contracts = append(contracts, contract)

		if status == domain.ContractActive {
			db.Model(&domain.Berth{}).Where("id = ?", berth.ID).Update("is_available", false)
			db.Model(&domain.Boat{}).Where("id = ?", boat.ID).Update("berth_id", berth.ID)
		}
	}

	log.Println("Creating bookings...")
	for i := 0; i < 15; i++ {
		boat := boats[(20+i)%len(boats)]
		berth := berths[(25+i)%len(berths)]
		start := now.AddDate(0, 0, rng.Intn(30)-10)
		end := start.AddDate(0, 0, 2+rng.Intn(5))

		status := domain.BookingConfirmed
		if i%5 == 4 {
			status = domain.BookingCompleted
			start = now.AddDate(0, 0, -20)
			end = start.AddDate(0, 0, 3)
		}

		booking := domain.Booking{
			MarinaID:    boat.MarinaID,
			OwnerID:     boat.OwnerID,
			BoatID:      boat.ID,
			BerthID:     berth.ID,
			Status:      status,
			StartDate:   start,
			EndDate:     end,
			TotalAmount: float64(45 * (2 + rng.Intn(5))),
		}
		db.Create(&booking)
	}

	log.Println("Creating invoices and payments...")
	invoices := make([]domain.Invoice, 0, 40)
	for i := 0; i < 40; i++ {
		contract := contracts[i%len(contracts)]
		due := now.AddDate(0, 0, 14-rng.Intn(45))

		status := domain.InvoicePending
		switch {
		case i < 25:
			status = domain.InvoicePaid
		case due.Before(now):
			status = domain.InvoiceOverdue
		}

		invoice := domain.Invoice{
			MarinaID:   contract.MarinaID,
			OwnerID:    contract.OwnerID,
			ContractID: &contract.ID,
			Number:     fmt.Sprintf("INV-2026-%04d", i+1),
			Status:     status,
			Total:      *contract.MonthlyRate,
			DueDate:    &due,
		}
		db.Create(&invoice)
		invoices = append(invoices, invoice)
	}

	for i := 0; i < 35; i++ {
		invoice := invoices[i%len(invoices)]

		status := domain.PaymentCompleted
		if i >= 30 {
			status = domain.PaymentPending
		}

		payment := domain.Payment{
			MarinaID:  invoice.MarinaID,
			OwnerID:   invoice.OwnerID,
			InvoiceID: &invoice.ID,
			Reference: uuid.NewString(),
			Amount:    invoice.Total,
			Status:    status,
			Gateway:   "stripe",
		}
		db.Create(&payment)
	}

	log.Println("Creating work orders...")
	titles := []string{"Hull cleaning", "Engine service", "Antifouling", "Rigging inspection", "Electrical fault", "Winterization"}
	priorities := []domain.WorkOrderPriority{domain.PriorityLow, domain.PriorityNormal, domain.PriorityHigh, domain.PriorityUrgent}
	for i := 0; i < 12; i++ {
		boat := boats[i%len(boats)]

		status := domain.WorkOrderPending
		var completed *time.Time
		switch {
		case i < 4:
			status = domain.WorkOrderCompleted
			t := now.AddDate(0, 0, -rng.Intn(20)-1)
			completed = &t
		case i < 7:
			status = domain.WorkOrderInProgress
		}

		order := domain.WorkOrder{
			MarinaID:      boat.MarinaID,
			OwnerID:       boat.OwnerID,
			BoatID:        &boat.ID,
			Status:        status,
			Priority:      priorities[i%len(priorities)],
			Title:         titles[i%len(titles)],
			TotalCost:     float64(150 + rng.Intn(20)*50),
			RequestedDate: now.AddDate(0, 0, -rng.Intn(30)),
			CompletedDate: completed,
		}
		db.Create(&order)
	}

	log.Println("Seed complete.")
}
