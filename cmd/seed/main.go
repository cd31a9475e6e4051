package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("hotel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM guests")

	ctx := context.Background()
	guests := repository.NewGuestRepository(db)
	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Guest{
		Email:        "admin@hotel.test",
		PasswordHash: string(adminHash),
		Name:         "Front Desk Admin",
		Role:         domain.RoleAdmin,
	}
	if err := guests.Create(ctx, &admin); err != nil {
		log.Fatal("admin create failed:", err)
	}
	log.Println("Admin created: admin@hotel.test / admin123")

	guestEmails := []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	created := make([]domain.Guest, 0, len(guestEmails))
	for i, email := range guestEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		g := domain.Guest{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Guest %d", i+1),
			Phone:        fmt.Sprintf("+1 555 010 00%02d", i+1),
			Role:         domain.RoleGuest,
		}
		if err := guests.Create(ctx, &g); err != nil {
			log.Fatal("guest create failed:", err)
		}
		created = append(created, g)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	roomSpecs := []domain.Room{
		{RoomNumber: "101", Capacity: 2, PricePerNight: 90, Description: "Standard double, garden view", IsActive: true},
		{RoomNumber: "102", Capacity: 2, PricePerNight: 90, Description: "Standard double, garden view", IsActive: true},
		{RoomNumber: "201", Capacity: 3, PricePerNight: 140, Description: "Family room with balcony", IsActive: true},
		{RoomNumber: "202", Capacity: 4, PricePerNight: 180, Description: "Family suite", IsActive: true},
		{RoomNumber: "301", Capacity: 2, PricePerNight: 250, Description: "Top floor suite, sea view", IsActive: true},
	}
	seeded := make([]domain.Room, 0, len(roomSpecs))
	for i := range roomSpecs {
		if err := rooms.Create(ctx, &roomSpecs[i]); err != nil {
			log.Fatal("room create failed:", err)
		}
		seeded = append(seeded, roomSpecs[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	today := time.Now().UTC().Truncate(24 * time.Hour)

	stays := []struct {
		room    domain.Room
		guest   domain.Guest
		inDays  int
		nights  int
		status  domain.BookingStatus
		guestCt int
	}{
		{seeded[0], created[0], -10, 3, domain.BookingCompleted, 2},
		{seeded[1], created[1], -5, 2, domain.BookingCancelled, 1},
		{seeded[0], created[1], 2, 4, domain.BookingConfirmed, 2},
		{seeded[2], created[2], 5, 3, domain.BookingConfirmed, 3},
		{seeded[4], created[0], 7, 2, domain.BookingPending, 2},
	}
	for i, s := range stays {
		checkIn := today.AddDate(0, 0, s.inDays)
		checkOut := checkIn.AddDate(0, 0, s.nights)
		b := domain.Booking{
			ReferenceCode: fmt.Sprintf("BK-SEED%03d", i+1),
			RoomID:        s.room.ID,
			GuestID:       s.guest.ID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			GuestCount:    s.guestCt,
			TotalPrice:    float64(s.nights) * s.room.PricePerNight,
			Status:        s.status,
		}
		if b.Status == domain.BookingCancelled {
			now := time.Now().UTC()
			b.CancelledAt = &now
			b.CancellationReason = "change of plans"
		}
		if err := bookings.Create(ctx, &b); err != nil {
			log.Fatal("booking create failed:", err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@hotel.test / admin123")
	log.Println("Guests: alice@example.com, bob@example.com, carol@example.com / guest123")
}
