// Package password encapsula el hash adaptativo de contraseñas.
package password

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Hasher genera y verifica hashes de contraseñas.
type Hasher interface {
	// Hash genera un hash con sal aleatoria a partir de la contraseña en claro.
	Hash(plain string) (string, error)

	// Check compara una contraseña en claro con un hash previamente generado.
	Check(hash, plain string) bool
}

// Bcrypt implementa Hasher con bcrypt y un costo configurable.
type Bcrypt struct {
	Cost int
}

// NewBcrypt retorna un Hasher bcrypt. Un costo fuera de rango usa bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{Cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", errors.Wrap(err, "no se pudo generar el hash de la contraseña")
	}
	return string(hash), nil
}

func (b *Bcrypt) Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
