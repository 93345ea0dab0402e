package auth

import "golang.org/x/crypto/bcrypt"

// DefaultHashCost is the bcrypt work factor applied to new passwords
// when no explicit cost is configured.
const DefaultHashCost = 10

// HashPassword returns a salted bcrypt digest of password. A cost of
// zero selects DefaultHashCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt
// digest. A malformed digest counts as a mismatch, not a failure.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
