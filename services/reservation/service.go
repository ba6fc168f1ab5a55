// Package reservation validates, prices and records reservation form submissions.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"khadamat/config"
	catalogRepo "khadamat/database/repository/catalog"
	reservationRepo "khadamat/database/repository/reservation"
	"khadamat/models"
	"khadamat/services/locale"
	"khadamat/services/pricing"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Outcome states of a submitted form.
const (
	StateEditing = "editing"
	StateSuccess = "success"
	StateFailed  = "failed"
)

// Outcome is what the form shows after a submit.
type Outcome struct {
	State           string                     `json:"state"`
	Message         string                     `json:"message"`
	Field           string                     `json:"field,omitempty"`
	Redirect        string                     `json:"redirect,omitempty"`
	RedirectAfterMs int                        `json:"redirectAfterMs,omitempty"`
	Reservation     *models.Reservation        `json:"reservation,omitempty"`
	Quote           *pricing.Quote             `json:"quote,omitempty"`
	Values          *models.ReservationRequest `json:"values,omitempty"`
}

// Notifier is told about every recorded reservation.
type Notifier interface {
	ReservationCreated(ctx context.Context, payload models.ReservationCreatedPayload) error
}

// DraftStore hands out the prefill draft a form was opened with.
type DraftStore interface {
	Consume(ctx context.Context, token string) (*models.PrefillDraft, error)
}

// ReservationService defines the reservation form operations.
type ReservationService interface {
	// Categories lists the configured reservation categories.
	Categories() []string
	// Quote prices a form without recording it.
	Quote(ctx context.Context, category, lang string, req models.ReservationRequest) (*pricing.Quote, error)
	// Submit validates, prices and records a form. userID is nil for anonymous customers.
	Submit(ctx context.Context, category, lang string, userID *string, req models.ReservationRequest) (*Outcome, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Catalog  *config.Catalog
	Types    catalogRepo.CatalogRepository
	Repo     reservationRepo.ReservationRepository
	Notifier Notifier
	Drafts   DraftStore
	Logger   *zap.Logger

	Now   func() time.Time
	NewID func() string

	policy *bluemonday.Policy
}

// NewReservationService wires a DefaultReservationService. notifier and drafts may be nil.
func NewReservationService(cat *config.Catalog, types catalogRepo.CatalogRepository, repo reservationRepo.ReservationRepository, notifier Notifier, drafts DraftStore, logger *zap.Logger) *DefaultReservationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultReservationService{
		Catalog:  cat,
		Types:    types,
		Repo:     repo,
		Notifier: notifier,
		Drafts:   drafts,
		Logger:   logger,
		Now:      time.Now,
		NewID:    uuid.NewString,
		policy:   bluemonday.StrictPolicy(),
	}
}

func (s *DefaultReservationService) Categories() []string {
	names := make([]string, 0, len(s.Catalog.Reservations))
	for name := range s.Catalog.Reservations {
		names = append(names, name)
	}
	return names
}

func (s *DefaultReservationService) category(name string) (config.ReservationConfig, pricing.Config, error) {
	cfg, ok := s.Catalog.Reservations[name]
	if !ok {
		return config.ReservationConfig{}, pricing.Config{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	pc, err := pricing.FromConfig(cfg.Pricing)
	if err != nil {
		return config.ReservationConfig{}, pricing.Config{}, fmt.Errorf("category %s: %w", name, err)
	}
	return cfg, pc, nil
}

// Quote returns the live price. Missing contact fields are not checked here.
func (s *DefaultReservationService) Quote(ctx context.Context, category, lang string, req models.ReservationRequest) (*pricing.Quote, error) {
	_, pc, err := s.category(category)
	if err != nil {
		return nil, err
	}
	types, err := s.loadTypes(ctx, req.TypeIDs(), lang)
	if err != nil {
		return nil, err
	}
	q := pricing.Compute(pc, pricingInput(types, req))
	return &q, nil
}

func (s *DefaultReservationService) Submit(ctx context.Context, category, lang string, userID *string, req models.ReservationRequest) (*Outcome, error) {
	lang = locale.Normalize(lang)
	cfg, pc, err := s.category(category)
	if err != nil {
		return nil, err
	}

	if verr := validate(cfg, req, lang); verr != nil {
		return editing(verr, req), verr
	}

	types, err := s.loadTypes(ctx, req.TypeIDs(), lang)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return editing(verr, req), verr
		}
		s.Logger.Error("Failed to load selected service types",
			zap.String("category", category), zap.Error(err))
		return s.failed(lang, req), fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	quote := pricing.Compute(pc, pricingInput(types, req))
	if !quote.Priced {
		verr := invalid("dimensions", locale.MsgDimensionsRequired, lang)
		return editing(verr, req), verr
	}

	res := s.buildReservation(req, types, quote, userID)
	if err := s.Repo.Insert(ctx, cfg.Table, res); err != nil {
		fields := []zap.Field{zap.String("category", category), zap.String("table", cfg.Table), zap.Error(err)}
		var ie *reservationRepo.InsertError
		if errors.As(err, &ie) {
			fields = append(fields, zap.String("code", ie.Code), zap.String("hint", ie.Hint), zap.String("details", ie.Details))
		}
		s.Logger.Error("Reservation insert failed", fields...)
		return s.failed(lang, req), fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	s.afterInsert(ctx, cfg.Table, req.PrefillToken, res)

	return &Outcome{
		State:           StateSuccess,
		Message:         locale.Messages().T(lang, locale.MsgReservationSuccess),
		Redirect:        cfg.Redirect,
		RedirectAfterMs: cfg.RedirectAfterMs,
		Reservation:     res,
		Quote:           &quote,
	}, nil
}

// afterInsert runs the best-effort follow-ups of a recorded reservation.
func (s *DefaultReservationService) afterInsert(ctx context.Context, table, token string, res *models.Reservation) {
	if s.Drafts != nil && strings.TrimSpace(token) != "" {
		if _, err := s.Drafts.Consume(ctx, token); err != nil {
			s.Logger.Debug("Prefill draft not consumed", zap.String("token", token), zap.Error(err))
		}
	}
	if s.Notifier != nil {
		payload := models.ReservationCreatedPayload{
			Table:         table,
			ReservationID: res.ID,
			Firstname:     res.Firstname,
			Phone:         res.Phone,
			FinalPrice:    res.FinalPrice,
		}
		if err := s.Notifier.ReservationCreated(ctx, payload); err != nil {
			s.Logger.Warn("Failed to enqueue reservation notification",
				zap.String("reservationId", res.ID), zap.Error(err))
		}
	}
}

func (s *DefaultReservationService) failed(lang string, req models.ReservationRequest) *Outcome {
	return &Outcome{
		State:   StateFailed,
		Message: locale.Messages().T(lang, locale.MsgReservationFailed),
		Values:  &req,
	}
}

func editing(verr *ValidationError, req models.ReservationRequest) *Outcome {
	return &Outcome{State: StateEditing, Field: verr.Field, Message: verr.Message, Values: &req}
}

// loadTypes returns the selected types in request order. An id that does not
// resolve is a validation error.
func (s *DefaultReservationService) loadTypes(ctx context.Context, ids []int64, lang string) ([]models.ServiceType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.Types.GetServiceTypesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.ServiceType, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	types := make([]models.ServiceType, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, invalid("selected_type_ids", locale.MsgSelectionInvalid, lang)
		}
		types = append(types, t)
	}
	return types, nil
}

// pricingInput charges the first type as the unit price and every further
// type as a line item.
func pricingInput(types []models.ServiceType, req models.ReservationRequest) pricing.Input {
	in := pricing.Input{Options: req.Options, Entries: entries(req.Dimensions)}
	for i, t := range types {
		if i == 0 {
			in.UnitPrice = t.PriceValue()
			continue
		}
		in.Extras = append(in.Extras, pricing.LineItem{ID: t.ID, Name: t.NameFR, Price: t.PriceValue()})
	}
	return in
}

func entries(dims []models.DimensionInput) []pricing.Entry {
	out := make([]pricing.Entry, 0, len(dims))
	for _, d := range dims {
		out = append(out, pricing.Entry{
			Label:    strings.TrimSpace(d.Label),
			LengthCm: pricing.CleanNumber(string(d.Length)),
			WidthCm:  pricing.CleanNumber(string(d.Width)),
		})
	}
	return out
}

func (s *DefaultReservationService) buildReservation(req models.ReservationRequest, types []models.ServiceType, quote pricing.Quote, userID *string) *models.Reservation {
	selected := make([]models.SelectedType, 0, len(types))
	for _, t := range types {
		name := locale.Pick(t.LocalizedName(), locale.FR)
		selected = append(selected, models.SelectedType{ID: t.ID, Name: name, Price: t.Price})
	}

	formData := make(map[string]interface{}, len(req.FormData)+4)
	for k, v := range req.FormData {
		formData[k] = v
	}
	formData["dimensions"] = quote.Entries
	formData["total_area"] = quote.TotalArea
	formData["add_ons"] = quote.AddOns
	formData["strategy"] = quote.Strategy

	return &models.Reservation{
		ID:              s.NewID(),
		Firstname:       s.clean(req.Firstname),
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		Location:        s.clean(req.Location),
		CategoryHouseID: req.CategoryHouseID,
		ServiceID:       req.ServiceID,
		SelectedTypes:   selected,
		FormData:        formData,
		FinalPrice:      quote.Total,
		PreferredDate:   strings.TrimSpace(req.PreferredDate),
		PreferredTime:   strings.TrimSpace(req.PreferredTime),
		Message:         s.clean(req.Message),
		UserID:          userID,
		Status:          models.ReservationStatusPending,
		CreatedAt:       s.Now().UTC(),
	}
}

// clean strips markup from free text and keeps the plain characters.
func (s *DefaultReservationService) clean(text string) string {
	policy := s.policy
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(text)))
}
