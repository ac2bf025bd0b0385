package orders

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const (
	maxCustomerName = 100
	maxNotes        = 500
)

// Normalize rapikan input sebelum validasi: trim nama, lowercase email.
func (d *Draft) Normalize() {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.CustomerEmail = strings.ToLower(strings.TrimSpace(d.CustomerEmail))
}

func (d *Draft) Validate() error {
	if len(d.Items) == 0 {
		return ValidationError{Field: "items", Reason: "must contain at least one item"}
	}
	for _, it := range d.Items {
		if it.ProductID == "" {
			return ValidationError{Field: "items.product_id", Reason: "is required"}
		}
		if it.Qty < 1 {
			return ValidationError{Field: "items.qty", Reason: "must be at least 1"}
		}
	}
	if d.CustomerName == "" {
		return ValidationError{Field: "customer_name", Reason: "is required"}
	}
	if len(d.CustomerName) > maxCustomerName {
		return ValidationError{Field: "customer_name", Reason: "cannot exceed 100 characters"}
	}
	if !emailRe.MatchString(d.CustomerEmail) {
		return ValidationError{Field: "customer_email", Reason: "is not a valid email"}
	}
	if len(d.Notes) > maxNotes {
		return ValidationError{Field: "notes", Reason: "cannot exceed 500 characters"}
	}
	return nil
}
