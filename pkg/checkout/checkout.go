// Package checkout validates the shipping form and turns the cart into an
// order. Line items carry id and quantity only; the backend reprices every
// line, so a tampered client cannot buy at its own prices.
package checkout

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vitrine-store/gateway/pkg/cart"
	"github.com/vitrine-store/gateway/pkg/models"
)

// Validation failure codes.
const (
	CodeMissingFields    = "missing_fields"
	CodeInvalidZipFormat = "invalid_zip_format"
	CodeEmptyCart        = "empty_cart"
)

// RequiredFields lists the draft fields that must be non-empty, in the order
// they are checked. Observation is free text and stays optional.
var RequiredFields = []string{
	"name", "email", "phone", "street", "number",
	"neighborhood", "zipcode", "city", "state",
}

var zipcodePattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// ValidationError reports why a draft was rejected before any network call.
type ValidationError struct {
	Code   string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("checkout validation failed (%s): %s", e.Code, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("checkout validation failed (%s)", e.Code)
}

// OrderBackend is the order slice of the commerce API client.
type OrderBackend interface {
	CreateOrder(ctx context.Context, bearer string, req models.CreateOrderRequest) (*models.CreateOrderResponse, error)
}

type Service struct {
	backend OrderBackend
	cart    *cart.Store
}

func NewService(backend OrderBackend, cartStore *cart.Store) *Service {
	return &Service{backend: backend, cart: cartStore}
}

// Validate checks the draft: first that every required field is present
// (flagging each missing one), then that the zipcode matches NNNNN-NNN. Raw
// values are checked as submitted; only the input formatter produces the
// hyphenated form, so an unformatted zipcode fails here.
func Validate(draft models.OrderDraft) *ValidationError {
	values := map[string]string{
		"name":         draft.Name,
		"email":        draft.Email,
		"phone":        draft.Phone,
		"street":       draft.Street,
		"number":       draft.Number,
		"neighborhood": draft.Neighborhood,
		"zipcode":      draft.Zipcode,
		"city":         draft.City,
		"state":        draft.State,
	}

	var missing []string
	for _, field := range RequiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Code: CodeMissingFields, Fields: missing}
	}

	if !zipcodePattern.MatchString(draft.Zipcode) {
		return &ValidationError{Code: CodeInvalidZipFormat, Fields: []string{"zipcode"}}
	}
	return nil
}

// FormatZipcode is the as-you-type formatter for the zipcode field: strip
// non-digits, insert the hyphen once a sixth digit appears, cap at 8 digits.
func FormatZipcode(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) <= 5 {
		return s
	}
	if len(s) > 8 {
		s = s[:8]
	}
	return s[:5] + "-" + s[5:]
}

// ResolveStateName maps a state code to its display name via the fetched
// reference list, falling back to the raw code when absent.
func ResolveStateName(states []models.State, code string) string {
	for _, s := range states {
		if s.Code == code {
			return s.Name
		}
	}
	return code
}

// Submit validates the draft and creates the order from the current cart.
// On success the cart is cleared and the backend's order id is returned; on
// failure nothing is committed locally and the caller may simply retry.
func (s *Service) Submit(ctx context.Context, sess *models.Session, draft models.OrderDraft, states []models.State) (string, error) {
	if sess == nil {
		return "", cart.ErrUnauthenticated
	}

	if verr := Validate(draft); verr != nil {
		return "", verr
	}

	items := s.cart.Items(ctx, sess)
	if len(items) == 0 {
		return "", &ValidationError{Code: CodeEmptyCart}
	}

	lines := make([]models.OrderLine, len(items))
	for i, item := range items {
		lines[i] = models.OrderLine{ID: item.ID, Quantity: item.Quantity}
	}

	req := models.CreateOrderRequest{
		ProductsIds:  lines,
		Phone:        draft.Phone,
		Street:       draft.Street,
		Number:       draft.Number,
		Neighborhood: draft.Neighborhood,
		ZipCode:      draft.Zipcode,
		City:         draft.City,
		State:        draft.State,
		StateName:    ResolveStateName(states, draft.State),
		Observation:  draft.Observation,
		Total:        cart.Total(items),
	}

	resp, err := s.backend.CreateOrder(ctx, sess.Token, req)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.cart.Clear(ctx, sess)
	return resp.OrderID, nil
}
