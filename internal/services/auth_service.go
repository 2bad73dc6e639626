package services

import (
	"database/sql"
	"errors"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/token"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Customers *repos.CustomerRepo
	Tokens    *token.Codec
}

func NewAuthService(customers *repos.CustomerRepo, tokens *token.Codec) *AuthService {
	return &AuthService{Customers: customers, Tokens: tokens}
}

func (s *AuthService) Register(name, email, password string) (int, error) {
	if _, err := s.Customers.ByEmail(email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return 0, err
	}
	return s.Customers.Create(name, email, string(hash))
}

// Login verifies credentials and issues the bearer token the auth gate
// accepts. The token is the full credential; there is no session registry
// and no revocation.
func (s *AuthService) Login(email, password string) (domain.Customer, string, error) {
	c, err := s.Customers.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, "", ErrBadCreds
	}
	if err != nil {
		return domain.Customer{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return domain.Customer{}, "", ErrBadCreds
	}
	tok, err := s.Tokens.SignSession(token.Identity{CustomerID: c.CustomerID, Name: c.Name, Email: c.Email})
	if err != nil {
		return domain.Customer{}, "", err
	}
	return c, tok, nil
}

func (s *AuthService) Profile(id int) (domain.Customer, error) {
	c, err := s.Customers.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, ErrNotFound
	}
	return c, err
}

func (s *AuthService) UpdateProfile(id int, name, email, password, dayPhone, evePhone, mobPhone string) (domain.Customer, error) {
	hash := ""
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
		if err != nil {
			return domain.Customer{}, err
		}
		hash = string(h)
	}
	if err := s.Customers.UpdateAccount(id, name, email, hash, dayPhone, evePhone, mobPhone); err != nil {
		return domain.Customer{}, err
	}
	return s.Profile(id)
}

func (s *AuthService) UpdateAddress(id int, address1, address2, city, region, postalCode, country string, shippingRegionID int) (domain.Customer, error) {
	if err := s.Customers.UpdateAddress(id, address1, address2, city, region, postalCode, country, shippingRegionID); err != nil {
		return domain.Customer{}, err
	}
	return s.Profile(id)
}

func (s *AuthService) UpdateCreditCard(id int, creditCard string) (domain.Customer, error) {
	if err := s.Customers.UpdateCreditCard(id, creditCard); err != nil {
		return domain.Customer{}, err
	}
	return s.Profile(id)
}
