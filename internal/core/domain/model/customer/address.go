package customer

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
	ErrStreetIsRequired        = errs.NewValueIsRequiredError("street")
	ErrZipIsRequired           = errs.NewValueIsRequiredError("zip")
	ErrCityIsRequired          = errs.NewValueIsRequiredError("city")
)

// Address is an immutable postal address.
type Address struct {
	street string
	number int
	zip    string
	city   string

	guard guard.ConstructorGuard
}

// NewAddress validates every component and returns all violations at once.
func NewAddress(street string, number int, zip, city string) (Address, error) {
	var violations []error
	if strings.TrimSpace(street) == "" {
		violations = append(violations, ErrStreetIsRequired)
	}
	if number <= 0 {
		violations = append(violations,
			errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is not greater than 0", number)))
	}
	if strings.TrimSpace(zip) == "" {
		violations = append(violations, ErrZipIsRequired)
	}
	if strings.TrimSpace(city) == "" {
		violations = append(violations, ErrCityIsRequired)
	}
	if err := errors.Join(violations...); err != nil {
		return Address{}, err
	}

	return Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Number() int {
	return a.number
}

func (a Address) Zip() string {
	return a.zip
}

func (a Address) City() string {
	return a.city
}

// IsEqual compares addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.number == other.number &&
		a.zip == other.zip &&
		a.city == other.city
}

// String renders the address on one line, e.g. "Street 1, 1, Zipcode 1, City 1".
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s, %s", a.street, a.number, a.zip, a.city)
}
