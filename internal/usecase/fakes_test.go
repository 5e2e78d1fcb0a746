package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// fakeStore backs in-memory implementations of the repository interfaces.
// Reserve holds the store mutex across the availability check and the
// insert, matching the serialization contract of the SQL transaction.
type fakeStore struct {
	mu        sync.Mutex
	hotels    map[int64]*entity.Hotel
	roomTypes map[int64]*entity.RoomType
	bookings  map[int64]*entity.Booking
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:    make(map[int64]*entity.Hotel),
		roomTypes: make(map[int64]*entity.RoomType),
		bookings:  make(map[int64]*entity.Booking),
	}
}

func (s *fakeStore) repos() *repository.Repository {
	return &repository.Repository{
		Hotel:    &fakeHotelRepo{s},
		RoomType: &fakeRoomTypeRepo{s},
		Booking:  &fakeBookingRepo{s},
	}
}

func (s *fakeStore) addHotel(name, city string) *entity.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now().UTC()
	hotel := &entity.Hotel{
		Base: entity.Base{ID: s.nextID, CreatedAt: now, UpdatedAt: now},
		Name: name,
		City: city,
	}
	s.hotels[hotel.ID] = hotel
	return hotel
}

func (s *fakeStore) addRoomType(hotelID int64, name string, totalUnits int, pricePerNight int64) *entity.RoomType {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now().UTC()
	roomType := &entity.RoomType{
		Base:          entity.Base{ID: s.nextID, CreatedAt: now, UpdatedAt: now},
		HotelID:       hotelID,
		Name:          name,
		Capacity:      2,
		PricePerNight: pricePerNight,
		TotalUnits:    totalUnits,
		IsActive:      true,
	}
	s.roomTypes[roomType.ID] = roomType
	return roomType
}

func (s *fakeStore) getBooking(id int64) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok {
		c := *b
		return &c
	}
	return nil
}

func (s *fakeStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *fakeStore) setCreatedAt(bookingID int64, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[bookingID]; ok {
		b.CreatedAt = createdAt
	}
}

func (s *fakeStore) sumOverlappingLocked(roomTypeID int64, checkIn, checkOut time.Time) int {
	booked := 0
	for _, b := range s.bookings {
		if b.RoomTypeID == roomTypeID && b.Status == entity.BookingStatusConfirmed && b.Overlaps(checkIn, checkOut) {
			booked += b.UnitsRequested
		}
	}
	return booked
}

// ==================== HOTEL REPOSITORY ====================

type fakeHotelRepo struct{ store *fakeStore }

func (r *fakeHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	hotel.ID = r.store.nextID
	c := *hotel
	r.store.hotels[hotel.ID] = &c
	return nil
}

func (r *fakeHotelRepo) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if h, ok := r.store.hotels[id]; ok {
		c := *h
		return &c, nil
	}
	return nil, nil
}

// ==================== ROOM TYPE REPOSITORY ====================

type fakeRoomTypeRepo struct{ store *fakeStore }

func (r *fakeRoomTypeRepo) Create(ctx context.Context, roomType *entity.RoomType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	roomType.ID = r.store.nextID
	c := *roomType
	r.store.roomTypes[roomType.ID] = &c
	return nil
}

func (r *fakeRoomTypeRepo) FindByID(ctx context.Context, id int64) (*entity.RoomType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rt, ok := r.store.roomTypes[id]; ok {
		c := *rt
		return &c, nil
	}
	return nil, nil
}

func (r *fakeRoomTypeRepo) FindActiveByHotelID(ctx context.Context, hotelID int64) ([]*entity.RoomType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var roomTypes []*entity.RoomType
	for _, rt := range r.store.roomTypes {
		if rt.HotelID == hotelID && rt.IsActive {
			c := *rt
			roomTypes = append(roomTypes, &c)
		}
	}
	sort.Slice(roomTypes, func(i, j int) bool {
		return roomTypes[i].PricePerNight < roomTypes[j].PricePerNight
	})
	return roomTypes, nil
}

// ==================== BOOKING REPOSITORY ====================

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) Reserve(ctx context.Context, booking *entity.Booking) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	roomType, ok := r.store.roomTypes[booking.RoomTypeID]
	if !ok || !roomType.IsActive {
		return 0, repository.ErrRoomTypeNotFound
	}

	available := roomType.TotalUnits - r.store.sumOverlappingLocked(booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
	if available < 0 {
		available = 0
	}
	if booking.UnitsRequested > available {
		return available, repository.ErrNotEnoughUnits
	}

	r.store.nextID++
	booking.ID = r.store.nextID
	c := *booking
	r.store.bookings[booking.ID] = &c
	return available - booking.UnitsRequested, nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	return r.store.getBooking(id), nil
}

func (r *fakeBookingRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.bookings {
		if b.GatewayOrderID != nil && *b.GatewayOrderID == orderID {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var bookings []*entity.Booking
	for _, b := range r.store.bookings {
		if b.UserID == userID {
			c := *b
			bookings = append(bookings, &c)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	if offset >= len(bookings) {
		return nil, nil
	}
	bookings = bookings[offset:]
	if limit < len(bookings) {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (r *fakeBookingRepo) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, b := range r.store.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.bookings[id]; !ok {
		return fmt.Errorf("booking %d not found", id)
	}
	delete(r.store.bookings, id)
	return nil
}

func (r *fakeBookingRepo) SumOverlappingUnits(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.sumOverlappingLocked(roomTypeID, checkIn, checkOut), nil
}

func (r *fakeBookingRepo) SetOrderID(ctx context.Context, bookingID int64, orderID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %d not found", bookingID)
	}
	b.GatewayOrderID = &orderID
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeBookingRepo) MarkPaid(ctx context.Context, bookingID int64, paymentID, signature string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[bookingID]
	if !ok || b.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("booking %d not found or not confirmed", bookingID)
	}
	b.IsPaid = true
	b.GatewayPaymentID = &paymentID
	b.GatewaySignature = &signature
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID int64, status entity.BookingStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %d not found", bookingID)
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeBookingRepo) CancelUnpaidCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var expired int64
	for _, b := range r.store.bookings {
		if b.Status == entity.BookingStatusConfirmed && !b.IsPaid && b.GatewayOrderID != nil && b.CreatedAt.Before(cutoff) {
			b.Status = entity.BookingStatusCancelled
			expired++
		}
	}
	return expired, nil
}

// ==================== PAYMENT GATEWAY ====================

// sigValid is the only signature fakeGateway accepts.
const sigValid = "sig-valid"

type fakeGateway struct {
	mu         sync.Mutex
	orders     int
	failCreate bool
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failCreate {
		return "", errors.New("provider unreachable")
	}
	g.orders++
	return fmt.Sprintf("order_fake_%d", g.orders), nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return orderID != "" && paymentID != "" && signature == sigValid
}

// ==================== HELPERS ====================

func testConfig() *utils.Config {
	return &utils.Config{
		Gateway: utils.GatewayConfig{Currency: "INR"},
	}
}

func newTestServices(store *fakeStore, gateway PaymentGateway) (BookingService, AvailabilityService) {
	log := zap.NewNop()
	repos := store.repos()
	return NewBookingService(repos, gateway, testConfig(), log),
		NewAvailabilityService(repos, log)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(value)
	if err != nil {
		t.Fatalf("parse date %s: %v", value, err)
	}
	return d
}
