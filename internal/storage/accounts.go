package storage

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/logger"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

// Accounts keeps two disjoint directories, one per role. Registration
// appends unconditionally: duplicate usernames are allowed and the first
// record whose credentials match wins at login.
type Accounts struct {
	users  []models.Account
	admins []models.Account
}

func NewAccounts() *Accounts {
	return &Accounts{}
}

func (a *Accounts) SaveAccount(username, pass string, role models.Role) (models.Account, error) {
	log := logger.Get()
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("save account failed")
		return models.Account{}, err
	}
	acc := models.Account{
		Username: username,
		PassHash: string(hash),
		Role:     role,
	}
	if role == models.RoleAdmin {
		a.admins = append(a.admins, acc)
	} else {
		a.users = append(a.users, acc)
	}
	log.Debug().Str("username", username).Str("role", role.String()).Msg("account saved")
	return acc, nil
}

func (a *Accounts) ValidAccount(username, pass string, role models.Role) (models.Account, error) {
	log := logger.Get()
	group := a.users
	if role == models.RoleAdmin {
		group = a.admins
	}
	for _, acc := range group {
		if acc.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(acc.PassHash), []byte(pass)) == nil {
			return acc, nil
		}
	}
	log.Debug().Str("username", username).Str("role", role.String()).Msg("credentials rejected")
	return models.Account{}, storerrros.ErrIncorrectCredentials
}
