package identity

import (
	"errors"
	"fmt"
	"unicode"

	"ordering/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

// ValidatePassword requires MinPasswordLength characters with an upper-case letter,
// a lower-case letter and a digit.
func ValidatePassword(password string) error {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	var problems []error
	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}
	if !upper {
		problems = append(problems, errors.New("must contain an upper-case letter"))
	}
	if !lower {
		problems = append(problems, errors.New("must contain a lower-case letter"))
	}
	if !digit {
		problems = append(problems, errors.New("must contain a digit"))
	}

	if len(problems) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("password", errors.Join(problems...))
	}
	return nil
}

// Hasher wraps bcrypt with a configurable cost.
type Hasher struct {
	cost int
}

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h Hasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
