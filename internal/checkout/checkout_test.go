package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShipping() ShippingForm {
	return ShippingForm{
		FullName:     "John Doe",
		Email:        "john@example.com",
		Phone:        "555-123-4567",
		AddressLine1: "123 Main St",
		City:         "San Francisco",
		State:        "ca",
		PostalCode:   "94105",
		Country:      "us",
	}
}

func validPayment() PaymentForm {
	return PaymentForm{
		CardName:   "John Doe",
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/25",
		CVV:        "123",
	}
}

func TestValidShippingPasses(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.Shipping(validShipping()))
}

func TestShippingRequiredFields(t *testing.T) {
	v := NewValidator()

	errs := v.Shipping(ShippingForm{})
	assert.Equal(t, "Full name is required", errs["full_name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Equal(t, "Address is required", errs["address_line1"])
	assert.Equal(t, "City is required", errs["city"])
	assert.Equal(t, "Postal code is required", errs["postal_code"])
}

func TestShippingRejectsMalformedEmail(t *testing.T) {
	v := NewValidator()

	form := validShipping()
	form.Email = "not-an-email"
	errs := v.Shipping(form)
	assert.Equal(t, "Invalid email format", errs["email"])
}

func TestValidPaymentPasses(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.Payment(validPayment()))
}

func TestCardNumberIgnoresSpaces(t *testing.T) {
	v := NewValidator()

	form := validPayment()
	form.CardNumber = "4242424242424242"
	assert.Empty(t, v.Payment(form))

	form.CardNumber = "4242 4242 4242 42"
	errs := v.Payment(form)
	assert.Equal(t, "Invalid card number", errs["card_number"])
}

func TestExpiryFormat(t *testing.T) {
	v := NewValidator()

	form := validPayment()
	form.ExpiryDate = "1/25"
	errs := v.Payment(form)
	assert.Equal(t, "Invalid format (MM/YY)", errs["expiry_date"])

	// Only the shape is checked; "13/99" is accepted, as in the reference.
	form.ExpiryDate = "13/99"
	assert.Empty(t, v.Payment(form))
}

func TestCVVAcceptsThreeOrFourDigits(t *testing.T) {
	v := NewValidator()

	form := validPayment()
	form.CVV = "1234"
	assert.Empty(t, v.Payment(form))

	form.CVV = "12"
	errs := v.Payment(form)
	assert.Equal(t, "Invalid CVV", errs["cvv"])

	form.CVV = "abc"
	errs = v.Payment(form)
	assert.Equal(t, "Invalid CVV", errs["cvv"])
}

func TestPaymentRequiredFields(t *testing.T) {
	v := NewValidator()

	errs := v.Payment(PaymentForm{})
	assert.Equal(t, "Name on card is required", errs["card_name"])
	assert.Equal(t, "Card number is required", errs["card_number"])
	assert.Equal(t, "Expiry date is required", errs["expiry_date"])
	assert.Equal(t, "CVV is required", errs["cvv"])
}

func TestRegisterPasswordRules(t *testing.T) {
	v := NewValidator()

	errs := v.Register(RegisterForm{
		Name:            "New User",
		Email:           "new@example.com",
		Password:        "12345",
		ConfirmPassword: "12345",
	})
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])

	errs = v.Register(RegisterForm{
		Name:            "New User",
		Email:           "new@example.com",
		Password:        "123456",
		ConfirmPassword: "654321",
	})
	assert.Equal(t, "Passwords do not match", errs["confirm_password"])

	errs = v.Register(RegisterForm{
		Name:            "New User",
		Email:           "new@example.com",
		Password:        "123456",
		ConfirmPassword: "123456",
	})
	assert.Empty(t, errs)
}
