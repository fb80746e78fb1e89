package entities

import "strings"

// Fallback strings shown when the optional client enrichment is missing.
const (
	ClientNotSelected   = "Cliente não selecionado"
	DocumentNotInformed = "Documento não informado"
	EmailNotInformed    = "E-mail não informado"
	PhoneNotInformed    = "Telefone não informado"
	AddressNotInformed  = "Endereço não informado"
)

// ClientRef identifies the client of a budget simulation.
//
// Only ID and Name are required. The remaining fields come from the external
// client registry and may be empty.
type ClientRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (c *ClientRef) DisplayName() string {
	if c == nil {
		return ClientNotSelected
	}
	return orFallback(c.Name, ClientNotSelected)
}

func (c *ClientRef) DisplayDocument() string {
	if c == nil {
		return DocumentNotInformed
	}
	return orFallback(c.Document, DocumentNotInformed)
}

func (c *ClientRef) DisplayEmail() string {
	if c == nil {
		return EmailNotInformed
	}
	return orFallback(c.Email, EmailNotInformed)
}

func (c *ClientRef) DisplayPhone() string {
	if c == nil {
		return PhoneNotInformed
	}
	return orFallback(c.Phone, PhoneNotInformed)
}

func (c *ClientRef) DisplayAddress() string {
	if c == nil {
		return AddressNotInformed
	}
	return orFallback(c.Address, AddressNotInformed)
}

func orFallback(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}
