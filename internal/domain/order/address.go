package order

import "strings"

// StoreAddress is the shop's own address used for in-store pickup.
type StoreAddress struct {
	Province string
	District string
	Ward     string
	Street   string
}

// Resolution is one of StorePickup, ReuseAddress or NewAddress.
type Resolution interface {
	isResolution()
}

type StorePickup struct {
	Address StoreAddress
}

type ReuseAddress struct {
	AddressID int64
}

// NewAddress asks the order service to create an address record. Ward is not
// collected by the form and mirrors District.
type NewAddress struct {
	Province string
	District string
	Ward     string
	Street   string
}

func (StorePickup) isResolution()  {}
func (ReuseAddress) isResolution() {}
func (NewAddress) isResolution()   {}

// ResolveAddress is the single decision point for where an order ships.
// Store pickup ignores the form's address fields. A saved address is reused
// only when none of its fields were edited; any edit creates a new record,
// even if the edited values match another saved address.
func ResolveAddress(form Form, book AddressBook, store StoreAddress) Resolution {
	if form.DeliveryType == DeliveryStore {
		return StorePickup{Address: store}
	}

	if form.SelectedAddressID != nil {
		if saved, ok := book.Find(*form.SelectedAddressID); ok && !edited(form, saved) {
			return ReuseAddress{AddressID: saved.ID}
		}
	}

	district := strings.TrimSpace(form.District)
	return NewAddress{
		Province: strings.TrimSpace(form.Province),
		District: district,
		Ward:     district,
		Street:   strings.TrimSpace(form.Street),
	}
}

func edited(form Form, saved SavedAddress) bool {
	return strings.TrimSpace(form.Province) != strings.TrimSpace(saved.Province) ||
		strings.TrimSpace(form.District) != strings.TrimSpace(saved.District) ||
		strings.TrimSpace(form.Street) != strings.TrimSpace(saved.Street)
}
