package web

import (
	"errors"
	"net/http"
	"time"

	"riascal/internal/calendar"
	"riascal/internal/model"
)

// eventDTO is the JSON shape of one booking on the wire.
type eventDTO struct {
	ID            string `json:"id"`
	ClientName    string `json:"client_name"`
	ServiceType   string `json:"service_type"`
	ServiceLabel  string `json:"service_label,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	PaymentStatus string `json:"payment_status"`
}

func toEventDTO(ev model.EventRecord) eventDTO {
	return eventDTO{
		ID:            ev.ID,
		ClientName:    ev.ClientName,
		ServiceType:   string(ev.Service),
		ServiceLabel:  ev.Service.Label(),
		Date:          ev.Date.Format(model.DateFormat),
		Time:          ev.Time,
		Location:      ev.Location,
		Notes:         ev.Notes,
		Amount:        ev.Amount,
		PaymentStatus: string(ev.Payment),
	}
}

func toEventDTOs(events []model.EventRecord) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventDTO(ev))
	}
	return out
}

// fromEventDTO turns a payload into a booking. Service and payment
// values degrade to their defaults when unrecognized; the date must
// parse, since it has no sane fallback.
func (s *Server) fromEventDTO(d eventDTO) (model.EventRecord, error) {
	day, err := time.ParseInLocation(model.DateFormat, d.Date, s.loc)
	if err != nil {
		return model.EventRecord{}, errors.New("date must be YYYY-MM-DD")
	}
	return model.EventRecord{
		ID:         d.ID,
		ClientName: d.ClientName,
		Service:    model.ParseServiceType(d.ServiceType),
		Date:       day,
		Time:       d.Time,
		Location:   d.Location,
		Notes:      d.Notes,
		Amount:     d.Amount,
		Payment:    model.ParsePaymentStatus(d.PaymentStatus),
	}, nil
}

// cellDTO is one month-view cell. Padding cells render as {"padding":true}.
type cellDTO struct {
	Date    string     `json:"date,omitempty"`
	Padding bool       `json:"padding,omitempty"`
	Today   bool       `json:"today,omitempty"`
	Events  []eventDTO `json:"events,omitempty"`
}

type bucketDTO struct {
	Slot   string     `json:"slot"`
	Events []eventDTO `json:"events,omitempty"`
}

type dayColumnDTO struct {
	Date    string      `json:"date"`
	Today   bool        `json:"today,omitempty"`
	Buckets []bucketDTO `json:"buckets"`
}

type dayViewDTO struct {
	Date    string      `json:"date"`
	Today   bool        `json:"today,omitempty"`
	Buckets []bucketDTO `json:"buckets"`
	Total   []eventDTO  `json:"total"`
}

// viewResponse is the payload of /api/view and every navigation call.
// Exactly one of Month/Week/Day is set, matching Mode.
type viewResponse struct {
	Mode          string         `json:"mode"`
	CurrentDate   string         `json:"current_date"`
	Today         string         `json:"today"`
	WeekdayLabels []string       `json:"weekday_labels"`
	Month         []cellDTO      `json:"month,omitempty"`
	Week          []dayColumnDTO `json:"week,omitempty"`
	Day           *dayViewDTO    `json:"day,omitempty"`
}

// renderView recomputes the full view for the cursor's current state.
// Callers must hold cursorMu.
func (s *Server) renderView(r *http.Request) viewResponse {
	events := s.store.List(r.Context())
	today := s.cursor.Today()

	resp := viewResponse{
		Mode:          string(s.cursor.Mode()),
		CurrentDate:   s.cursor.Current().Format(model.DateFormat),
		Today:         today.Format(model.DateFormat),
		WeekdayLabels: calendar.WeekdayLabels[:],
	}

	switch s.cursor.Mode() {
	case calendar.ViewWeek:
		cols := calendar.ComputeWeekView(s.cursor, events)
		week := make([]dayColumnDTO, 0, len(cols))
		for _, col := range cols {
			week = append(week, dayColumnDTO{
				Date:    col.Day.Format(model.DateFormat),
				Today:   calendar.SameDay(col.Day, today),
				Buckets: toBucketDTOs(col.Buckets),
			})
		}
		resp.Week = week

	case calendar.ViewDay:
		dv := calendar.ComputeDayView(s.cursor, events)
		resp.Day = &dayViewDTO{
			Date:    dv.Day.Format(model.DateFormat),
			Today:   calendar.SameDay(dv.Day, today),
			Buckets: toBucketDTOs(dv.Buckets),
			Total:   toEventDTOs(dv.Total),
		}

	default:
		cells := calendar.ComputeMonthView(s.cursor, events)
		month := make([]cellDTO, 0, len(cells))
		for _, cell := range cells {
			if cell.Padding() {
				month = append(month, cellDTO{Padding: true})
				continue
			}
			month = append(month, cellDTO{
				Date:   cell.Day.Format(model.DateFormat),
				Today:  calendar.SameDay(cell.Day, today),
				Events: toEventDTOs(cell.Events),
			})
		}
		resp.Month = month
	}

	return resp
}

func toBucketDTOs(buckets []calendar.SlotBucket) []bucketDTO {
	out := make([]bucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucketDTO{Slot: b.Label, Events: toEventDTOs(b.Events)})
	}
	return out
}
