package booking

import (
	"fmt"
	"strings"
	"sync"
)

// MinPostalLookupLength is the minimum postal-code length that triggers
// an address lookup.
const MinPostalLookupLength = 3

// Address is a resolved service address.
type Address struct {
	Street      string `json:"address"`
	City        string `json:"city"`
	Province    string `json:"province"`
	FullAddress string `json:"fullAddress"`
}

// fsaDatabase maps forward sortation areas (the first three characters of
// a Canadian postal code) to a representative address.
var fsaDatabase = map[string]Address{
	"M5V": {Street: "25 Queens Quay W", City: "Toronto", Province: "Ontario"},
	"M4W": {Street: "123 Bloor St E", City: "Toronto", Province: "Ontario"},
	"M5T": {Street: "287 Spadina Ave", City: "Toronto", Province: "Ontario"},
	"K1P": {Street: "56 Sparks St", City: "Ottawa", Province: "Ontario"},
	"H2Y": {Street: "800 René-Lévesque Blvd", City: "Montreal", Province: "Quebec"},
	"V6B": {Street: "128 W Cordova St", City: "Vancouver", Province: "British Columbia"},
	"T2P": {Street: "240 8 Ave SW", City: "Calgary", Province: "Alberta"},
	"B3J": {Street: "1505 Barrington St", City: "Halifax", Province: "Nova Scotia"},
	"R3C": {Street: "330 Portage Ave", City: "Winnipeg", Province: "Manitoba"},
	"S7K": {Street: "220 3rd Ave S", City: "Saskatoon", Province: "Saskatchewan"},
}

// LookupAddress resolves a postal code to an address by its forward
// sortation area. The second return value is false when the FSA is not
// in the table.
func LookupAddress(postalCode string) (Address, bool) {
	if len(postalCode) < MinPostalLookupLength {
		return Address{}, false
	}
	fsa := strings.ToUpper(postalCode[:MinPostalLookupLength])
	addr, ok := fsaDatabase[fsa]
	if !ok {
		return Address{}, false
	}
	addr.FullAddress = fmt.Sprintf("%s, %s, %s", addr.Street, addr.City, addr.Province)
	return addr, true
}

// EstimateDistanceKm returns the simulated one-way distance from the
// service centre to a resolved city. Estimates are deterministic band
// midpoints: within Toronto, elsewhere in Ontario, and out of province.
func EstimateDistanceKm(addr Address) float64 {
	switch {
	case addr.City == "Toronto":
		return 25
	case addr.Province == "Ontario":
		return 100
	default:
		return 1000
	}
}

// AddressCache caches successful postal-code lookups keyed by the full
// postal code, so repeated lookups skip the table entirely.
type AddressCache struct {
	mu      sync.Mutex
	entries map[string]Address
}

// NewAddressCache creates an empty address cache.
func NewAddressCache() *AddressCache {
	return &AddressCache{entries: make(map[string]Address)}
}

// Get returns the cached address for a postal code.
func (c *AddressCache) Get(postalCode string) (Address, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	addr, ok := c.entries[postalCode]
	return addr, ok
}

// Put stores a resolved address for a postal code.
func (c *AddressCache) Put(postalCode string, addr Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[postalCode] = addr
}

// Len returns the number of cached entries.
func (c *AddressCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Resolve looks up a postal code cache-first: a hit returns the cached
// address, a miss consults the FSA table and caches the result. The
// second return value is false when the postal code cannot be resolved.
func (c *AddressCache) Resolve(postalCode string) (Address, bool) {
	if addr, ok := c.Get(postalCode); ok {
		return addr, true
	}
	addr, ok := LookupAddress(postalCode)
	if !ok {
		return Address{}, false
	}
	c.Put(postalCode, addr)
	return addr, true
}
