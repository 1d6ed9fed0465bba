// Package checkout validates the checkout wizard and registration forms.
// Validation failures surface as field-level messages; a non-empty error
// map blocks progression to the next step.
package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ShippingForm is step one of the checkout wizard.
type ShippingForm struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country"`
}

// PaymentForm is step two of the checkout wizard.
type PaymentForm struct {
	CardName          string `json:"card_name" validate:"required"`
	CardNumber        string `json:"card_number" validate:"required,card_number"`
	ExpiryDate        string `json:"expiry_date" validate:"required,expiry"`
	CVV               string `json:"cvv" validate:"required,cvv"`
	SavePaymentMethod bool   `json:"save_payment_method"`
}

// RegisterForm is the account registration form.
type RegisterForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

// FieldErrors maps field names (their JSON names) to display messages.
type FieldErrors map[string]string

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// Validator validates checkout and registration forms.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the card, expiry, and CVV rules
// registered.
func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names so error maps line up with the
	// request payloads.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		digits := strings.ReplaceAll(fl.Field().String(), " ", "")
		return cardNumberRe.MatchString(digits)
	})
	v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
		return cvvRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Shipping validates step one. An empty map means the step may proceed.
func (v *Validator) Shipping(form ShippingForm) FieldErrors {
	return v.collect(form)
}

// Payment validates step two.
func (v *Validator) Payment(form PaymentForm) FieldErrors {
	return v.collect(form)
}

// Register validates the registration form.
func (v *Validator) Register(form RegisterForm) FieldErrors {
	return v.collect(form)
}

func (v *Validator) collect(form any) FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return FieldErrors{}
	}

	out := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		switch fe.Field() {
		case "full_name":
			return "Full name is required"
		case "email":
			return "Email is required"
		case "phone":
			return "Phone number is required"
		case "address_line1":
			return "Address is required"
		case "city":
			return "City is required"
		case "postal_code":
			return "Postal code is required"
		case "card_name":
			return "Name on card is required"
		case "card_number":
			return "Card number is required"
		case "expiry_date":
			return "Expiry date is required"
		case "cvv":
			return "CVV is required"
		case "name":
			return "Name is required"
		case "password":
			return "Password is required"
		}
		return "This field is required"
	}

	switch {
	case fe.Field() == "email":
		return "Invalid email format"
	case fe.Field() == "card_number":
		return "Invalid card number"
	case fe.Field() == "expiry_date":
		return "Invalid format (MM/YY)"
	case fe.Field() == "cvv":
		return "Invalid CVV"
	case fe.Field() == "password" && fe.Tag() == "min":
		return "Password must be at least 6 characters"
	case fe.Field() == "confirm_password":
		return "Passwords do not match"
	}
	return "Invalid value"
}
