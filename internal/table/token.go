package table

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

func getTokenSecret() ([]byte, error) {
	secret := os.Getenv("QR_TOKEN_SECRET")
	if secret == "" {
		return nil, errors.New("QR_TOKEN_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken signs the QR session token for a table. No expiry:
// printed QR codes live until the code is regenerated, which bumps the
// version embedded here.
func GenerateToken(tableID string, version int) (string, error) {
	if tableID == "" {
		return "", errors.New("empty tableID passed to GenerateToken")
	}

	secret, err := getTokenSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"tableID": tableID,
		"ver":     version,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses a QR token and returns the table id and the token
// version it was minted with. The caller checks the version against the
// table's current one.
func ValidateToken(tokenString string) (string, int, error) {
	secret, err := getTokenSecret()
	if err != nil {
		return "", 0, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", 0, errors.New("invalid table token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, errors.New("invalid token claims")
	}

	tableID, _ := claims["tableID"].(string)
	verFloat, _ := claims["ver"].(float64)

	return tableID, int(verFloat), nil
}
