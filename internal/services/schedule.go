package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

// Buckets of a booking day. An order anywhere in a bucket occupies all of it.
const (
	BucketDay     = "pagi-siang"
	BucketEvening = "sore-malam"
)

// Messages returned for times that can never be booked.
const (
	MsgBreakTime   = "Waktu ini tidak tersedia karena waktu istirahat."
	MsgInvalidTime = "Waktu yang dipilih tidak valid."
)

const dateLayout = "2006-01-02"

// SlotKind is the classification of a clock time.
type SlotKind int

const (
	SlotInvalid SlotKind = iota
	SlotBreak
	SlotBookable
)

// Slot is the result of classifying a clock time.
type Slot struct {
	Kind   SlotKind
	Bucket string // set when Kind is SlotBookable
}

// Message describes why a non-bookable slot is unavailable.
func (s Slot) Message() string {
	if s.Kind == SlotBreak {
		return MsgBreakTime
	}
	return MsgInvalidTime
}

// ClockHours converts HH:MM or HH:MM:SS into fractional hours.
func ClockHours(clock string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("clock %q: expected HH:MM[:SS]", clock)
	}

	limits := []int{24, 60, 60}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("clock %q: %w", clock, err)
		}
		if n < 0 || n >= limits[i] {
			return 0, fmt.Errorf("clock %q: field %d out of range", clock, i+1)
		}
		fields[i] = n
	}
	return float64(fields[0]) + float64(fields[1])/60 + float64(fields[2])/3600, nil
}

// Classify places a clock time into a bucket, a break or neither.
//
//	[0, 5.99]      break
//	[6, 15]        pagi-siang
//	[15.01, 16.99] break
//	[17, 23.99]    sore-malam
//
// Times between those ranges, and unparsable input, are invalid.
func Classify(clock string) Slot {
	h, err := ClockHours(clock)
	if err != nil {
		return Slot{Kind: SlotInvalid}
	}
	switch {
	case h >= 0 && h <= 5.99, h >= 15.01 && h <= 16.99:
		return Slot{Kind: SlotBreak}
	case h >= 6 && h <= 15:
		return Slot{Kind: SlotBookable, Bucket: BucketDay}
	case h >= 17 && h <= 23.99:
		return Slot{Kind: SlotBookable, Bucket: BucketEvening}
	default:
		return Slot{Kind: SlotInvalid}
	}
}

// Window returns the clock range an order must fall in to occupy bucket on date.
// Both bounds are inclusive and cover every time Classify accepts for bucket.
func Window(date, bucket string) models.TimeWindow {
	if bucket == BucketEvening {
		return models.TimeWindow{Date: date, Bucket: bucket, Start: "17:00", End: "23:59:59"}
	}
	return models.TimeWindow{Date: date, Bucket: bucket, Start: "06:00", End: "15:00"}
}

func availableMessage(w models.TimeWindow) string {
	return fmt.Sprintf("Jadwal %s pada tanggal %s tersedia.", w.Bucket, w.Date)
}

func unavailableMessage(w models.TimeWindow) string {
	return fmt.Sprintf("Jadwal %s pada tanggal %s sudah tidak tersedia.", w.Bucket, w.Date)
}

// OrderWindowCounter counts orders inside a time window.
type OrderWindowCounter interface {
	CountInWindow(ctx context.Context, window models.TimeWindow) (int, error)
}

// ScheduleService answers availability questions.
type ScheduleService struct {
	orders OrderWindowCounter
}

func NewScheduleService(orders OrderWindowCounter) *ScheduleService {
	return &ScheduleService{orders: orders}
}

// Check reports whether the bucket containing req.Time is free on req.Date.
// Missing or malformed dates are ErrValidation; break and invalid times are
// answered as unavailable without touching the database.
func (s *ScheduleService) Check(ctx context.Context, req models.ScheduleRequest) (*models.ScheduleResponse, error) {
	if req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("%w: tanggal and jam are required", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: tanggal must be YYYY-MM-DD", ErrValidation)
	}

	slot := Classify(req.Time)
	if slot.Kind != SlotBookable {
		return &models.ScheduleResponse{Available: false, Message: slot.Message()}, nil
	}

	window := Window(req.Date, slot.Bucket)
	count, err := s.orders.CountInWindow(ctx, window)
	if err != nil {
		logger.Log.Errorw("failed to count orders", "date", req.Date, "bucket", slot.Bucket, "err", err)
		return nil, err
	}

	if count > 0 {
		return &models.ScheduleResponse{Available: false, Message: unavailableMessage(window)}, nil
	}
	return &models.ScheduleResponse{Available: true, Message: availableMessage(window)}, nil
}
