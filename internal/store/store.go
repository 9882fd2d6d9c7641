package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grooming-dashboard-backend/internal/availability"
	"grooming-dashboard-backend/internal/model"
	"grooming-dashboard-backend/internal/parse"
)

// Store defines the interface for all database operations.
type Store interface {
	ListTechnicians(ctx context.Context) ([]model.Technician, error)
	UpsertTechnician(ctx context.Context, tech *model.Technician) error
	AppointmentsBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, appt *model.Appointment) error
	DeleteAppointment(ctx context.Context, id int64) error
	CreateBlock(ctx context.Context, block *model.UnavailabilityBlock) error
	Snapshot(ctx context.Context, from, to time.Time) (availability.Snapshot, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ListTechnicians(ctx context.Context) ([]model.Technician, error) {
	var techs []model.Technician
	if err := s.db.WithContext(ctx).Order("name").Find(&techs).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	return techs, nil
}

// UpsertTechnician creates or replaces a roster entry keyed by name.
func (s *gormStore) UpsertTechnician(ctx context.Context, tech *model.Technician) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"zip_code", "restrictions", "cities", "updated_at"}),
	}).Create(tech).Error
	if err != nil {
		return fmt.Errorf("failed to upsert technician %q: %w", tech.Name, err)
	}
	return nil
}

func (s *gormStore) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := s.db.WithContext(ctx).
		Where("start_at >= ? AND start_at < ?", from, to).
		Order("start_at").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (s *gormStore) CreateAppointment(ctx context.Context, appt *model.Appointment) error {
	if err := s.db.WithContext(ctx).Create(appt).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteAppointment(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Appointment{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) CreateBlock(ctx context.Context, block *model.UnavailabilityBlock) error {
	if err := s.db.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("failed to create unavailability block: %w", err)
	}
	return nil
}

// Snapshot loads the roster plus every commitment in [from, to) and converts
// them into the search's value types. Rows the search could not interpret
// (missing name or zip, unparseable clock values, inverted blocks) are
// dropped here with a warning; the search assumes clean input.
func (s *gormStore) Snapshot(ctx context.Context, from, to time.Time) (availability.Snapshot, error) {
	var snap availability.Snapshot

	var techs []model.Technician
	if err := s.db.WithContext(ctx).Find(&techs).Error; err != nil {
		return snap, fmt.Errorf("snapshot: failed to load technicians: %w", err)
	}
	snap.Technicians = make([]availability.Technician, 0, len(techs))
	for _, t := range techs {
		if t.Name == "" || t.ZipCode == "" {
			log.Printf("Warning: skipping technician row %d with missing name or zip", t.ID)
			continue
		}
		snap.Technicians = append(snap.Technicians, availability.Technician{
			Name:         t.Name,
			ZipCode:      t.ZipCode,
			Restrictions: t.Restrictions,
			Cities:       parse.CityList(t.Cities),
		})
	}

	appts, err := s.AppointmentsBetween(ctx, from, to)
	if err != nil {
		return snap, fmt.Errorf("snapshot: %w", err)
	}
	snap.Appointments = make([]availability.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Technician == "" || a.DurationMinutes <= 0 {
			log.Printf("Warning: skipping appointment row %d with missing technician or duration", a.ID)
			continue
		}
		snap.Appointments = append(snap.Appointments, availability.Appointment{
			Technician:      a.Technician,
			ZipCode:         a.ZipCode,
			StartAt:         a.StartAt,
			DurationMinutes: a.DurationMinutes,
		})
	}

	var blocks []model.UnavailabilityBlock
	err = s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Find(&blocks).Error
	if err != nil {
		return snap, fmt.Errorf("snapshot: failed to load unavailability blocks: %w", err)
	}
	snap.Blocks = make([]availability.Block, 0, len(blocks))
	for _, b := range blocks {
		startMin, startErr := parse.MinuteOfDay(b.Start)
		endMin, endErr := parse.MinuteOfDay(b.End)
		if b.Technician == "" || startErr != nil || endErr != nil || endMin <= startMin {
			log.Printf("Warning: skipping unavailability block row %d (%q-%q)", b.ID, b.Start, b.End)
			continue
		}
		snap.Blocks = append(snap.Blocks, availability.Block{
			Technician:  b.Technician,
			Date:        b.Date,
			StartMinute: startMin,
			EndMinute:   endMin,
		})
	}

	return snap, nil
}
