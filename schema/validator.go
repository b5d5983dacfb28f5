// Package schema validates snack and checkout payloads crossing the mock API boundary.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/url"

	"snackshop/models"
)

const (
	targetSnack            = "snack"
	targetSnacks           = "snack list"
	targetCheckoutRequest  = "checkout request"
	targetCheckoutResponse = "checkout response"
)

// rawNutrition mirrors models.NutritionFacts with optional fields so missing keys can be reported
type rawNutrition struct {
	Calories *float64 `json:"calories"`
	Fat      *float64 `json:"fat"`
	Carbs    *float64 `json:"carbs"`
	Protein  *float64 `json:"protein"`
}

type rawSnack struct {
	ID             *string       `json:"id"`
	Name           *string       `json:"name"`
	Price          *float64      `json:"price"`
	Description    *string       `json:"description"`
	Category       *string       `json:"category"`
	ImageURL       *string       `json:"imageUrl"`
	InStock        *bool         `json:"inStock"`
	NutritionFacts *rawNutrition `json:"nutritionFacts"`
}

type rawCartItem struct {
	SnackID  *string  `json:"snackId"`
	Quantity *float64 `json:"quantity"`
}

// ParseSnack decodes and validates a single snack payload
func ParseSnack(data []byte) (models.Snack, error) {
	l := &issueList{}
	snack, ok := parseSnack(data, l)
	if !ok {
		return models.Snack{}, l.err(targetSnack)
	}
	return snack, nil
}

// ParseSnacks decodes and validates a snack collection payload.
// Every element is checked; the collection fails as a whole if any element fails.
func ParseSnacks(data []byte) ([]models.Snack, error) {
	elems, err := decodeArray(data)
	if err != nil {
		l := &issueList{}
		l.add("", err.Error())
		return nil, l.err(targetSnacks)
	}

	l := &issueList{}
	snacks := make([]models.Snack, 0, len(elems))
	for i, elem := range elems {
		el := &issueList{prefix: indexPath(i)}
		snack, ok := parseSnack(elem, el)
		l.issues = append(l.issues, el.issues...)
		if ok {
			snacks = append(snacks, snack)
		}
	}
	if err := l.err(targetSnacks); err != nil {
		return nil, err
	}
	return snacks, nil
}

// ValidateSnack checks a typed snack against the catalog rules
func ValidateSnack(snack models.Snack) error {
	l := &issueList{}
	checkSnack(snack, l)
	return l.err(targetSnack)
}

// ValidateSnacks checks every snack of a result set
func ValidateSnacks(snacks []models.Snack) error {
	l := &issueList{}
	for i, snack := range snacks {
		el := &issueList{prefix: indexPath(i)}
		checkSnack(snack, el)
		l.issues = append(l.issues, el.issues...)
	}
	return l.err(targetSnacks)
}

// ParseCheckoutRequest decodes and validates a checkout request body.
// The body must be a JSON array; an empty array is valid here.
func ParseCheckoutRequest(data []byte) ([]models.CartItem, error) {
	elems, err := decodeArray(data)
	if err != nil {
		l := &issueList{}
		l.add("", err.Error())
		return nil, l.err(targetCheckoutRequest)
	}

	l := &issueList{}
	items := make([]models.CartItem, 0, len(elems))
	for i, elem := range elems {
		el := &issueList{prefix: indexPath(i)}
		var raw rawCartItem
		if err := decodeObject(elem, &raw); err != nil {
			el.add(decodeIssue(err))
			l.issues = append(l.issues, el.issues...)
			continue
		}

		var item models.CartItem
		if raw.SnackID == nil {
			el.add("snackId", "required")
		} else {
			item.SnackID = *raw.SnackID
		}
		if raw.Quantity == nil {
			el.add("quantity", "required")
		} else {
			requireInteger(el, "quantity", *raw.Quantity, &item.Quantity)
		}
		if len(el.issues) == 0 {
			checkCartItem(item, el)
		}
		l.issues = append(l.issues, el.issues...)
		items = append(items, item)
	}
	if err := l.err(targetCheckoutRequest); err != nil {
		return nil, err
	}
	return items, nil
}

// ValidateCheckoutRequest checks the line items submitted to checkout
func ValidateCheckoutRequest(items []models.CartItem) error {
	l := &issueList{}
	for i, item := range items {
		el := &issueList{prefix: indexPath(i)}
		checkCartItem(item, el)
		l.issues = append(l.issues, el.issues...)
	}
	return l.err(targetCheckoutRequest)
}

// ValidateCheckoutResponse checks a receipt before it is handed to the caller
func ValidateCheckoutResponse(receipt models.CheckoutReceipt) error {
	l := &issueList{}
	if receipt.TransactionID == "" {
		l.add("transactionId", "must not be empty")
	}
	return l.err(targetCheckoutResponse)
}

func parseSnack(data []byte, l *issueList) (models.Snack, bool) {
	var raw rawSnack
	if err := decodeObject(data, &raw); err != nil {
		l.add(decodeIssue(err))
		return models.Snack{}, false
	}

	before := len(l.issues)
	var snack models.Snack

	requireString(l, "id", raw.ID, &snack.ID)
	requireString(l, "name", raw.Name, &snack.Name)
	requireString(l, "description", raw.Description, &snack.Description)
	requireString(l, "category", raw.Category, &snack.Category)
	requireString(l, "imageUrl", raw.ImageURL, &snack.ImageURL)

	if raw.Price == nil {
		l.add("price", "required")
	} else {
		snack.Price = *raw.Price
	}
	if raw.InStock == nil {
		l.add("inStock", "required")
	} else {
		snack.InStock = *raw.InStock
	}

	if raw.NutritionFacts == nil {
		l.add("nutritionFacts", "required")
	} else {
		n := raw.NutritionFacts
		if n.Calories == nil {
			l.add("nutritionFacts.calories", "required")
		} else {
			requireInteger(l, "nutritionFacts.calories", *n.Calories, &snack.NutritionFacts.Calories)
		}
		requireNumber(l, "nutritionFacts.fat", n.Fat, &snack.NutritionFacts.Fat)
		requireNumber(l, "nutritionFacts.carbs", n.Carbs, &snack.NutritionFacts.Carbs)
		requireNumber(l, "nutritionFacts.protein", n.Protein, &snack.NutritionFacts.Protein)
	}

	if len(l.issues) > before {
		return models.Snack{}, false
	}

	checkSnack(snack, l)
	return snack, len(l.issues) == before
}

func checkSnack(snack models.Snack, l *issueList) {
	if snack.ID == "" {
		l.add("id", "must not be empty")
	}
	if snack.Name == "" {
		l.add("name", "must not be empty")
	}
	if !(snack.Price > 0) {
		l.add("price", "must be positive")
	}
	if !isAbsoluteURL(snack.ImageURL) {
		l.add("imageUrl", "must be a valid URL")
	}
	n := snack.NutritionFacts
	if n.Calories < 0 {
		l.add("nutritionFacts.calories", "must not be negative")
	}
	if !(n.Fat >= 0) {
		l.add("nutritionFacts.fat", "must not be negative")
	}
	if !(n.Carbs >= 0) {
		l.add("nutritionFacts.carbs", "must not be negative")
	}
	if !(n.Protein >= 0) {
		l.add("nutritionFacts.protein", "must not be negative")
	}
}

func checkCartItem(item models.CartItem, l *issueList) {
	if item.SnackID == "" {
		l.add("snackId", "must not be empty")
	}
	if item.Quantity <= 0 {
		l.add("quantity", "must be positive")
	}
}

func requireString(l *issueList, field string, v *string, dst *string) {
	if v == nil {
		l.add(field, "required")
		return
	}
	*dst = *v
}

func requireNumber(l *issueList, field string, v *float64, dst *float64) {
	if v == nil {
		l.add(field, "required")
		return
	}
	*dst = *v
}

// decodeArray splits a JSON array into its raw elements; null is not an array
func decodeArray(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.New("expected array")
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, errors.New("expected array")
	}
	return elems, nil
}

func decodeObject(data []byte, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("expected object")
	}
	return json.Unmarshal(trimmed, dst)
}

// decodeIssue turns a decoding error into a field path and message
func decodeIssue(err error) (string, string) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field, "expected " + typeErr.Type.String() + ", got " + typeErr.Value
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "", "malformed JSON"
	}
	return "", err.Error()
}

// requireInteger stores v in dst when it is a whole number within int32 range
func requireInteger(l *issueList, field string, v float64, dst *int) {
	switch {
	case math.IsInf(v, 0) || math.IsNaN(v) || math.Trunc(v) != v:
		l.add(field, "must be an integer")
	case math.Abs(v) > math.MaxInt32:
		l.add(field, "out of range")
	default:
		*dst = int(v)
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
