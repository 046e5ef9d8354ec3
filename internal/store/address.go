// Package store handles the convenience-store address lookup the SHOPLINE
// channel needs: door-to-store deliveries carry only a store name, and the
// warehouse wants a street address.
package store

import (
	"strings"

	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

// AddressBook maps store names to street addresses per chain. Lookup
// failures carry an address string beginning "ERROR"; consumers treat those
// as missing.
type AddressBook struct {
	Seven  map[string]string `json:"SEVEN"`
	Family map[string]string `json:"FAMILY"`
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		Seven:  make(map[string]string),
		Family: make(map[string]string),
	}
}

// SevenAddress returns the 7-11 address for a store, false when missing or
// marked failed.
func (b *AddressBook) SevenAddress(storeName string) (string, bool) {
	return validAddress(b.Seven[storeName])
}

// FamilyAddress returns the FamilyMart address for a store, false when
// missing or marked failed.
func (b *AddressBook) FamilyAddress(storeName string) (string, bool) {
	return validAddress(b.Family[storeName])
}

func validAddress(addr string) (string, bool) {
	if addr == "" || strings.Contains(addr, "ERROR") {
		return addr, false
	}
	return addr, true
}

// StoreNames holds the distinct store names a file references, per chain.
type StoreNames struct {
	Seven  []string
	Family []string
}

// Empty reports whether the file needs no address lookup at all.
func (n StoreNames) Empty() bool {
	return len(n.Seven) == 0 && len(n.Family) == 0
}

// ExtractStoreNames collects the distinct convenience-store names from
// SHOPLINE raw rows, keyed off the shipping-method literal before the first
// full-width paren.
func ExtractStoreNames(rows []platform.RawRow, cfg platform.FieldConfig) StoreNames {
	sevenSeen := make(map[string]bool)
	familySeen := make(map[string]bool)
	var names StoreNames

	methodCol := cfg.Column(platform.RoleDeliveryMethod)
	storeCol := cfg.Column(platform.RoleStoreName)

	for _, row := range rows {
		method, _, _ := strings.Cut(utils.SafeString(row[methodCol]), "（")
		storeName := utils.SafeString(row[storeCol])
		if storeName == "" {
			continue
		}

		switch method {
		case platform.ShippingSeven:
			if !sevenSeen[storeName] {
				sevenSeen[storeName] = true
				names.Seven = append(names.Seven, storeName)
			}
		case platform.ShippingFamily:
			if !familySeen[storeName] {
				familySeen[storeName] = true
				names.Family = append(names.Family, storeName)
			}
		}
	}
	return names
}
