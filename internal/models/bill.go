package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/billsplit/pkg/money"
)

// Platform selects the receipt theme. It has no effect on the calculation.
type Platform string

const (
	PlatformGrab       Platform = "grab"
	PlatformLineMan    Platform = "lineman"
	PlatformShopeeFood Platform = "shopeefood"
	PlatformFoodpanda  Platform = "foodpanda"
	PlatformRobinhood  Platform = "robinhood"
	PlatformOther      Platform = "other"

	DefaultPlatform = PlatformGrab
)

// Platforms lists every known platform.
var Platforms = []Platform{
	PlatformGrab, PlatformLineMan, PlatformShopeeFood,
	PlatformFoodpanda, PlatformRobinhood, PlatformOther,
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	return slices.Contains(Platforms, p)
}

// ParsePlatform converts user input to a known platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrBadPlatform, s)
	}
	return p, nil
}

// BillConfig holds the bill-wide fees and discount.
type BillConfig struct {
	Delivery money.Amount `json:"delivery"`
	Service  money.Amount `json:"service"`
	Discount money.Amount `json:"discount"`
}

// Item is a single purchase line for one person.
type Item struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

// Person is a participant in an itemized bill.
type Person struct {
	// ID is unique within the bill (UUID format).
	ID   string `json:"id"`
	Name string `json:"name"`

	// Items are this person's purchases; their prices sum to Food().
	Items []Item `json:"items"`

	// Paid is toggled by the user once the person has settled up.
	Paid Flag `json:"paid"`
}

// Food returns the person's pre-discount purchase total.
func (p Person) Food() float64 {
	var total float64
	for _, item := range p.Items {
		total += item.Price.Float64()
	}
	return total
}

// Bill is the itemized "current bill".
type Bill struct {
	Platform   Platform   `json:"platform"`
	BillConfig BillConfig `json:"billConfig"`
	People     []Person   `json:"people"`

	// QRCode is an optional payment QR image stored inline as a data URI.
	QRCode string `json:"qrCode"`
}

// NewBill returns an empty bill.
func NewBill() *Bill {
	b := &Bill{}
	b.Normalize()
	return b
}

// Normalize repairs a freshly decoded bill: nil slices become empty, missing
// IDs are generated and an empty or unknown platform falls back to the
// default.
func (b *Bill) Normalize() {
	if !b.Platform.Valid() {
		b.Platform = DefaultPlatform
	}
	if b.People == nil {
		b.People = []Person{}
	}
	for i := range b.People {
		p := &b.People[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if p.Items == nil {
			p.Items = []Item{}
		}
		for j := range p.Items {
			if p.Items[j].ID == "" {
				p.Items[j].ID = uuid.New().String()
			}
		}
	}
}

// Clone returns a deep copy of the bill.
func (b *Bill) Clone() *Bill {
	c := *b
	c.People = make([]Person, len(b.People))
	for i, p := range b.People {
		p.Items = append([]Item(nil), p.Items...)
		if p.Items == nil {
			p.Items = []Item{}
		}
		c.People[i] = p
	}
	return &c
}

// Person returns the person with the given ID.
func (b *Bill) Person(id string) (*Person, error) {
	for i := range b.People {
		if b.People[i].ID == id {
			return &b.People[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, id)
}

// PaidAt reports whether the i-th person has paid.
func (b *Bill) PaidAt(i int) bool {
	return i >= 0 && i < len(b.People) && bool(b.People[i].Paid)
}

// AddPerson appends a new unpaid person. An empty name becomes "Person N".
func (b *Bill) AddPerson(name string) Person {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Person %d", len(b.People)+1)
	}
	p := Person{ID: uuid.New().String(), Name: name, Items: []Item{}}
	b.People = append(b.People, p)
	return p
}

// RenamePerson changes a person's display name. Empty names are ignored.
func (b *Bill) RenamePerson(id, name string) error {
	p, err := b.Person(id)
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name != "" {
		p.Name = name
	}
	return nil
}

// RemovePerson deletes a person and all of their items.
func (b *Bill) RemovePerson(id string) error {
	for i := range b.People {
		if b.People[i].ID == id {
			b.People = append(b.People[:i], b.People[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
}

// TogglePaid flips a person's paid flag.
func (b *Bill) TogglePaid(id string) error {
	p, err := b.Person(id)
	if err != nil {
		return err
	}
	p.Paid = !p.Paid
	return nil
}

// AddItem appends an item to a person. An empty name becomes "Item N".
func (b *Bill) AddItem(personID, name string, price money.Amount) (Item, error) {
	p, err := b.Person(personID)
	if err != nil {
		return Item{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Item %d", len(p.Items)+1)
	}
	item := Item{ID: uuid.New().String(), Name: name, Price: price}
	p.Items = append(p.Items, item)
	return item, nil
}

// UpdateItem replaces an item's name and price. An empty name keeps the
// current one.
func (b *Bill) UpdateItem(personID, itemID, name string, price money.Amount) error {
	p, err := b.Person(personID)
	if err != nil {
		return err
	}
	for i := range p.Items {
		if p.Items[i].ID != itemID {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			p.Items[i].Name = name
		}
		p.Items[i].Price = price
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// RemoveItem deletes an item from a person.
func (b *Bill) RemoveItem(personID, itemID string) error {
	p, err := b.Person(personID)
	if err != nil {
		return err
	}
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}
